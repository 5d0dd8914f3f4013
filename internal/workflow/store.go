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

package workflow

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lattice-hq/lattice/internal/dsl"
	dbmodel "github.com/lattice-hq/lattice/internal/system/database/model"
	"github.com/lattice-hq/lattice/internal/system/database/provider"
)

// workflowStoreInterface defines the interface for workflow store operations.
type workflowStoreInterface interface {
	CreateWorkflow(wf Workflow) error
	GetWorkflowList(limit, offset int) ([]BasicWorkflow, error)
	GetWorkflowCount() (int, error)
	GetWorkflow(workflowID string) (*Workflow, error)
	GetWorkflowByName(name string) (*Workflow, error)
	UpdateWorkflow(wf *Workflow) error
	DeleteWorkflow(workflowID string) error
}

// workflowStore is the default implementation of workflowStoreInterface.
type workflowStore struct {
	dbProvider provider.DBProviderInterface
}

// newWorkflowStore creates a new instance of the workflow store.
func newWorkflowStore() workflowStoreInterface {
	return &workflowStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateWorkflow persists a new workflow.
func (s *workflowStore) CreateWorkflow(wf Workflow) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	steps, err := json.Marshal(wf.Steps)
	if err != nil {
		return fmt.Errorf("failed to marshal steps: %w", err)
	}

	_, err = dbClient.Execute(queryCreateWorkflow, wf.ID, wf.Name, wf.Description, string(steps),
		wf.CreatedAt.UTC().Format(time.RFC3339Nano), wf.UpdatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetWorkflowList retrieves a page of workflows.
func (s *workflowStore) GetWorkflowList(limit, offset int) ([]BasicWorkflow, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetWorkflowList, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	workflows := make([]BasicWorkflow, 0, len(results))
	for _, row := range results {
		wf, err := buildWorkflowFromRow(row)
		if err != nil {
			return nil, err
		}
		workflows = append(workflows, BasicWorkflow{
			ID:          wf.ID,
			Name:        wf.Name,
			Description: wf.Description,
			StepCount:   len(wf.Steps),
			UpdatedAt:   wf.UpdatedAt,
		})
	}
	return workflows, nil
}

// GetWorkflowCount returns the total number of workflows.
func (s *workflowStore) GetWorkflowCount() (int, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetWorkflowCount)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return parseCountResult(results)
}

// GetWorkflow retrieves a workflow by its ID.
func (s *workflowStore) GetWorkflow(workflowID string) (*Workflow, error) {
	return s.getWorkflow(queryGetWorkflowByID, workflowID)
}

// GetWorkflowByName retrieves a workflow by its name.
func (s *workflowStore) GetWorkflowByName(name string) (*Workflow, error) {
	return s.getWorkflow(queryGetWorkflowByName, name)
}

// UpdateWorkflow updates an existing workflow.
func (s *workflowStore) UpdateWorkflow(wf *Workflow) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	steps, err := json.Marshal(wf.Steps)
	if err != nil {
		return fmt.Errorf("failed to marshal steps: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryUpdateWorkflow, wf.ID, wf.Name, wf.Description,
		string(steps), wf.UpdatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrWorkflowNotFound
	}
	return nil
}

// DeleteWorkflow deletes a workflow by its ID.
func (s *workflowStore) DeleteWorkflow(workflowID string) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryDeleteWorkflow, workflowID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

func (s *workflowStore) getWorkflow(query dbmodel.DBQuery, arg string) (*Workflow, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrWorkflowNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}
	return buildWorkflowFromRow(results[0])
}

// buildWorkflowFromRow constructs a workflow from a database row.
func buildWorkflowFromRow(row map[string]interface{}) (*Workflow, error) {
	workflowID, ok := row["workflow_id"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse workflow_id as string")
	}
	name, ok := row["name"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse name as string")
	}

	description := ""
	if row["description"] != nil {
		description, ok = row["description"].(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse description as string")
		}
	}

	var steps []dsl.Step
	switch raw := row["steps"].(type) {
	case string:
		if err := json.Unmarshal([]byte(raw), &steps); err != nil {
			return nil, fmt.Errorf("failed to unmarshal steps: %w", err)
		}
	case []byte:
		if err := json.Unmarshal(raw, &steps); err != nil {
			return nil, fmt.Errorf("failed to unmarshal steps: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to parse steps")
	}
	if steps == nil {
		steps = []dsl.Step{}
	}

	createdAt, err := parseTimestamp(row["created_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	updatedAt, err := parseTimestamp(row["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return &Workflow{
		ID:          workflowID,
		Name:        name,
		Description: description,
		Steps:       steps,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}

// parseTimestamp converts a timestamp column value to time.Time.
func parseTimestamp(value interface{}) (time.Time, error) {
	switch raw := value.(type) {
	case time.Time:
		return raw, nil
	case string:
		return time.Parse(time.RFC3339Nano, raw)
	case []byte:
		return time.Parse(time.RFC3339Nano, string(raw))
	default:
		return time.Time{}, fmt.Errorf("unsupported timestamp type %T", value)
	}
}

// parseCountResult extracts the total from a COUNT(*) query result.
func parseCountResult(results []map[string]interface{}) (int, error) {
	if len(results) != 1 {
		return 0, fmt.Errorf("unexpected number of results: %d", len(results))
	}
	switch total := results[0]["total"].(type) {
	case int64:
		return int(total), nil
	case int:
		return total, nil
	case float64:
		return int(total), nil
	default:
		return 0, fmt.Errorf("failed to parse count result")
	}
}
