/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package workflow handles the workflow management operations. Workflow steps
// pass through the step sanitizer on every write, so stored workflows always
// hold steps in canonical form.
package workflow

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/lattice-hq/lattice/internal/dsl"
	"github.com/lattice-hq/lattice/internal/entitydef"
	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
	"github.com/lattice-hq/lattice/internal/system/log"
	"github.com/lattice-hq/lattice/internal/system/utils"
)

const maxStepCount = 50

var workflowNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9 _-]{0,62}$`)

// WorkflowServiceInterface defines the interface for the workflow service.
type WorkflowServiceInterface interface {
	CreateWorkflow(name, description string, rawSteps json.RawMessage) (*Workflow, *serviceerror.ServiceError)
	GetWorkflowList(params utils.PageParams) (*WorkflowListResponse, *serviceerror.ServiceError)
	GetWorkflow(workflowID string) (*Workflow, *serviceerror.ServiceError)
	UpdateWorkflow(workflowID, name, description string, rawSteps json.RawMessage) (*Workflow, *serviceerror.ServiceError)
	DeleteWorkflow(workflowID string) *serviceerror.ServiceError
}

// workflowService is the default implementation of WorkflowServiceInterface.
type workflowService struct {
	store      workflowStoreInterface
	defService entitydef.EntityDefServiceInterface
}

// NewWorkflowService creates a new instance of the workflow service.
func NewWorkflowService(defService entitydef.EntityDefServiceInterface) WorkflowServiceInterface {
	return &workflowService{
		store:      newWorkflowStore(),
		defService: defService,
	}
}

// CreateWorkflow validates, sanitizes and creates a new workflow.
func (s *workflowService) CreateWorkflow(
	name, description string, rawSteps json.RawMessage,
) (*Workflow, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WorkflowService"))

	name = strings.TrimSpace(name)
	if violations := validateName(name); len(violations) > 0 {
		return nil, ErrorInvalidWorkflow.WithViolations(violations)
	}

	steps, svcErr := s.prepareSteps(rawSteps)
	if svcErr != nil {
		return nil, svcErr
	}

	existing, err := s.store.GetWorkflowByName(name)
	if err != nil && !errors.Is(err, ErrWorkflowNotFound) {
		logger.Error("Failed to check existing workflow by name", log.Error(err), log.String("name", name))
		return nil, &ErrorInternalServerError
	}
	if existing != nil {
		return nil, &ErrorWorkflowAlreadyExists
	}

	now := time.Now().UTC()
	wf := &Workflow{
		ID:          utils.GenerateUUID(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Steps:       steps,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateWorkflow(*wf); err != nil {
		logger.Error("Failed to create workflow", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("Workflow created", log.String(log.LoggerKeyWorkflowID, wf.ID),
		log.Int("stepCount", len(wf.Steps)))
	return wf, nil
}

// GetWorkflowList retrieves a page of workflows.
func (s *workflowService) GetWorkflowList(
	params utils.PageParams,
) (*WorkflowListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WorkflowService"))

	total, err := s.store.GetWorkflowCount()
	if err != nil {
		logger.Error("Failed to count workflows", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	workflows, err := s.store.GetWorkflowList(params.PerPage, params.Offset())
	if err != nil {
		logger.Error("Failed to list workflows", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &WorkflowListResponse{
		Total:     total,
		Workflows: workflows,
	}, nil
}

// GetWorkflow retrieves a workflow by its ID.
func (s *workflowService) GetWorkflow(workflowID string) (*Workflow, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WorkflowService"))

	if strings.TrimSpace(workflowID) == "" {
		return nil, &ErrorInvalidWorkflowID
	}

	wf, err := s.store.GetWorkflow(workflowID)
	if err != nil {
		if errors.Is(err, ErrWorkflowNotFound) {
			return nil, &ErrorWorkflowNotFound
		}
		logger.Error("Failed to get workflow", log.String(log.LoggerKeyWorkflowID, workflowID), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return wf, nil
}

// UpdateWorkflow validates, sanitizes and updates an existing workflow.
func (s *workflowService) UpdateWorkflow(
	workflowID, name, description string, rawSteps json.RawMessage,
) (*Workflow, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WorkflowService"))

	if strings.TrimSpace(workflowID) == "" {
		return nil, &ErrorInvalidWorkflowID
	}
	name = strings.TrimSpace(name)
	if violations := validateName(name); len(violations) > 0 {
		return nil, ErrorInvalidWorkflow.WithViolations(violations)
	}

	steps, svcErr := s.prepareSteps(rawSteps)
	if svcErr != nil {
		return nil, svcErr
	}

	existing, err := s.store.GetWorkflow(workflowID)
	if err != nil {
		if errors.Is(err, ErrWorkflowNotFound) {
			return nil, &ErrorWorkflowNotFound
		}
		logger.Error("Failed to get workflow", log.String(log.LoggerKeyWorkflowID, workflowID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	sameName, err := s.store.GetWorkflowByName(name)
	if err != nil && !errors.Is(err, ErrWorkflowNotFound) {
		logger.Error("Failed to check existing workflow by name", log.Error(err), log.String("name", name))
		return nil, &ErrorInternalServerError
	}
	if sameName != nil && sameName.ID != workflowID {
		return nil, &ErrorWorkflowAlreadyExists
	}

	wf := &Workflow{
		ID:          workflowID,
		Name:        name,
		Description: strings.TrimSpace(description),
		Steps:       steps,
		CreatedAt:   existing.CreatedAt,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := s.store.UpdateWorkflow(wf); err != nil {
		if errors.Is(err, ErrWorkflowNotFound) {
			return nil, &ErrorWorkflowNotFound
		}
		logger.Error("Failed to update workflow", log.String(log.LoggerKeyWorkflowID, workflowID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("Workflow updated", log.String(log.LoggerKeyWorkflowID, workflowID),
		log.Int("stepCount", len(wf.Steps)))
	return wf, nil
}

// DeleteWorkflow deletes a workflow by its ID.
func (s *workflowService) DeleteWorkflow(workflowID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WorkflowService"))

	if strings.TrimSpace(workflowID) == "" {
		return &ErrorInvalidWorkflowID
	}

	if _, err := s.store.GetWorkflow(workflowID); err != nil {
		if errors.Is(err, ErrWorkflowNotFound) {
			return &ErrorWorkflowNotFound
		}
		logger.Error("Failed to get workflow", log.String(log.LoggerKeyWorkflowID, workflowID), log.Error(err))
		return &ErrorInternalServerError
	}

	if err := s.store.DeleteWorkflow(workflowID); err != nil {
		logger.Error("Failed to delete workflow", log.String(log.LoggerKeyWorkflowID, workflowID), log.Error(err))
		return &ErrorInternalServerError
	}

	logger.Debug("Workflow deleted", log.String(log.LoggerKeyWorkflowID, workflowID))
	return nil
}

// prepareSteps sanitizes the raw step payload and verifies its entity
// definition references.
func (s *workflowService) prepareSteps(rawSteps json.RawMessage) ([]dsl.Step, *serviceerror.ServiceError) {
	if len(rawSteps) == 0 {
		return []dsl.Step{}, nil
	}

	steps, err := dsl.SanitizeSteps(rawSteps)
	if err != nil {
		return nil, ErrorInvalidWorkflow.WithViolations(map[string]string{"steps": err.Error()})
	}
	if len(steps) > maxStepCount {
		return nil, ErrorInvalidWorkflow.WithViolations(map[string]string{
			"steps": fmt.Sprintf("a workflow may contain at most %d steps", maxStepCount),
		})
	}

	for i := range steps {
		dsl.EnsureCSVOptions(&steps[i])
	}

	for i, step := range steps {
		if step.From.Type == dsl.EndpointTypeEntity {
			if svcErr := s.checkEntityReference(step.From.EntityDefinition, i, "from"); svcErr != nil {
				return nil, svcErr
			}
		}
		if step.To.Type == dsl.EndpointTypeEntity {
			if svcErr := s.checkEntityReference(step.To.EntityDefinition, i, "to"); svcErr != nil {
				return nil, svcErr
			}
		}
	}
	return steps, nil
}

// checkEntityReference verifies that the named entity definition exists.
func (s *workflowService) checkEntityReference(name string, stepIndex int, side string) *serviceerror.ServiceError {
	if strings.TrimSpace(name) == "" {
		return ErrorInvalidWorkflow.WithViolations(map[string]string{
			fmt.Sprintf("steps[%d].%s.entity_definition", stepIndex, side): "entity_definition is required",
		})
	}

	if _, svcErr := s.defService.GetEntityDefinitionByName(name); svcErr != nil {
		if svcErr.Type == serviceerror.ClientErrorType {
			return ErrorUnknownEntityDefinition.WithDescription(
				fmt.Sprintf("steps[%d].%s references unknown entity definition %q", stepIndex, side, name))
		}
		return &ErrorInternalServerError
	}
	return nil
}

// validateName validates a workflow name.
func validateName(name string) map[string]string {
	violations := make(map[string]string)
	if name == "" {
		violations["name"] = "name is required"
	} else if !workflowNameRegex.MatchString(name) {
		violations["name"] = "name must start with a letter and contain only letters, digits, spaces, hyphens and underscores"
	}
	return violations
}
