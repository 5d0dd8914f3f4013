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

// Package permission handles the permission scheme management operations.
package permission

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
	"github.com/lattice-hq/lattice/internal/system/log"
	"github.com/lattice-hq/lattice/internal/system/utils"
)

const maxRuleCount = 200

var (
	schemeNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9 _-]{0,62}$`)
	resourceRegex   = regexp.MustCompile(`^[a-zA-Z0-9_/.-]+\*?$`)
	actionRegex     = regexp.MustCompile(`^(\*|[a-z][a-z0-9_-]*)$`)
)

// SchemeServiceInterface defines the interface for the permission scheme service.
type SchemeServiceInterface interface {
	CreatePermissionScheme(scheme *PermissionScheme) (*PermissionScheme, *serviceerror.ServiceError)
	GetPermissionSchemeList(params utils.PageParams) (*PermissionSchemeListResponse, *serviceerror.ServiceError)
	GetPermissionScheme(schemeID string) (*PermissionScheme, *serviceerror.ServiceError)
	UpdatePermissionScheme(schemeID string, scheme *PermissionScheme) (*PermissionScheme, *serviceerror.ServiceError)
	DeletePermissionScheme(schemeID string) *serviceerror.ServiceError
	EvaluateAccess(schemeID, resource, action string) (*EvaluationResult, *serviceerror.ServiceError)
}

// schemeService is the default implementation of SchemeServiceInterface.
type schemeService struct {
	store schemeStoreInterface
}

// NewSchemeService creates a new instance of the permission scheme service.
func NewSchemeService() SchemeServiceInterface {
	return &schemeService{
		store: newSchemeStore(),
	}
}

// CreatePermissionScheme validates and creates a new permission scheme.
func (s *schemeService) CreatePermissionScheme(
	scheme *PermissionScheme,
) (*PermissionScheme, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SchemeService"))

	if violations := validateScheme(scheme); len(violations) > 0 {
		return nil, ErrorInvalidScheme.WithViolations(violations)
	}

	existing, err := s.store.GetPermissionSchemeByName(scheme.Name)
	if err != nil && !errors.Is(err, ErrSchemeNotFound) {
		logger.Error("Failed to check existing permission scheme by name", log.Error(err),
			log.String("name", scheme.Name))
		return nil, &ErrorInternalServerError
	}
	if existing != nil {
		return nil, &ErrorSchemeAlreadyExists
	}

	scheme.ID = utils.GenerateUUID()
	if scheme.Rules == nil {
		scheme.Rules = []Rule{}
	}
	if err := s.store.CreatePermissionScheme(*scheme); err != nil {
		logger.Error("Failed to create permission scheme", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("Permission scheme created", log.String("id", scheme.ID), log.String("name", scheme.Name))
	return scheme, nil
}

// GetPermissionSchemeList retrieves a page of permission schemes.
func (s *schemeService) GetPermissionSchemeList(
	params utils.PageParams,
) (*PermissionSchemeListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SchemeService"))

	total, err := s.store.GetPermissionSchemeCount()
	if err != nil {
		logger.Error("Failed to count permission schemes", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	schemes, err := s.store.GetPermissionSchemeList(params.PerPage, params.Offset())
	if err != nil {
		logger.Error("Failed to list permission schemes", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &PermissionSchemeListResponse{
		Total:   total,
		Schemes: schemes,
	}, nil
}

// GetPermissionScheme retrieves a permission scheme by its ID.
func (s *schemeService) GetPermissionScheme(schemeID string) (*PermissionScheme, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SchemeService"))

	if strings.TrimSpace(schemeID) == "" {
		return nil, &ErrorInvalidSchemeID
	}

	scheme, err := s.store.GetPermissionScheme(schemeID)
	if err != nil {
		if errors.Is(err, ErrSchemeNotFound) {
			return nil, &ErrorSchemeNotFound
		}
		logger.Error("Failed to get permission scheme", log.String("id", schemeID), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return scheme, nil
}

// UpdatePermissionScheme validates and updates an existing permission scheme.
func (s *schemeService) UpdatePermissionScheme(
	schemeID string, scheme *PermissionScheme,
) (*PermissionScheme, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SchemeService"))

	if strings.TrimSpace(schemeID) == "" {
		return nil, &ErrorInvalidSchemeID
	}
	if violations := validateScheme(scheme); len(violations) > 0 {
		return nil, ErrorInvalidScheme.WithViolations(violations)
	}

	existing, err := s.store.GetPermissionSchemeByName(scheme.Name)
	if err != nil && !errors.Is(err, ErrSchemeNotFound) {
		logger.Error("Failed to check existing permission scheme by name", log.Error(err),
			log.String("name", scheme.Name))
		return nil, &ErrorInternalServerError
	}
	if existing != nil && existing.ID != schemeID {
		return nil, &ErrorSchemeAlreadyExists
	}

	scheme.ID = schemeID
	if scheme.Rules == nil {
		scheme.Rules = []Rule{}
	}
	if err := s.store.UpdatePermissionScheme(scheme); err != nil {
		if errors.Is(err, ErrSchemeNotFound) {
			return nil, &ErrorSchemeNotFound
		}
		logger.Error("Failed to update permission scheme", log.String("id", schemeID), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return scheme, nil
}

// DeletePermissionScheme deletes a permission scheme. The delete is refused
// while roles still reference the scheme.
func (s *schemeService) DeletePermissionScheme(schemeID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SchemeService"))

	if strings.TrimSpace(schemeID) == "" {
		return &ErrorInvalidSchemeID
	}

	if _, err := s.store.GetPermissionScheme(schemeID); err != nil {
		if errors.Is(err, ErrSchemeNotFound) {
			return &ErrorSchemeNotFound
		}
		logger.Error("Failed to get permission scheme", log.String("id", schemeID), log.Error(err))
		return &ErrorInternalServerError
	}

	roleCount, err := s.store.GetRoleReferenceCount(schemeID)
	if err != nil {
		logger.Error("Failed to count role references", log.String("id", schemeID), log.Error(err))
		return &ErrorInternalServerError
	}
	if roleCount > 0 {
		return &ErrorSchemeInUse
	}

	if err := s.store.DeletePermissionScheme(schemeID); err != nil {
		logger.Error("Failed to delete permission scheme", log.String("id", schemeID), log.Error(err))
		return &ErrorInternalServerError
	}

	logger.Debug("Permission scheme deleted", log.String("id", schemeID))
	return nil
}

// EvaluateAccess evaluates whether the scheme grants the action on the resource.
func (s *schemeService) EvaluateAccess(
	schemeID, resource, action string,
) (*EvaluationResult, *serviceerror.ServiceError) {
	if strings.TrimSpace(resource) == "" || strings.TrimSpace(action) == "" {
		return nil, &ErrorInvalidEvaluationRequest
	}

	scheme, svcErr := s.GetPermissionScheme(schemeID)
	if svcErr != nil {
		return nil, svcErr
	}

	return &EvaluationResult{
		Resource: resource,
		Action:   action,
		Allowed:  Evaluate(scheme, resource, action),
	}, nil
}

// validateScheme validates a permission scheme payload and returns the
// violations keyed by field path.
func validateScheme(scheme *PermissionScheme) map[string]string {
	violations := make(map[string]string)
	if scheme == nil {
		violations["scheme"] = "scheme payload is required"
		return violations
	}

	if strings.TrimSpace(scheme.Name) == "" {
		violations["name"] = "name is required"
	} else if !schemeNameRegex.MatchString(scheme.Name) {
		violations["name"] = "name must start with a letter and contain only letters, digits, spaces, hyphens and underscores"
	}

	if len(scheme.Rules) > maxRuleCount {
		violations["rules"] = fmt.Sprintf("a scheme may contain at most %d rules", maxRuleCount)
		return violations
	}

	for i, rule := range scheme.Rules {
		if strings.TrimSpace(rule.Resource) == "" {
			violations[fmt.Sprintf("rules[%d].resource", i)] = "resource is required"
		} else if !resourceRegex.MatchString(rule.Resource) {
			violations[fmt.Sprintf("rules[%d].resource", i)] = "resource contains invalid characters"
		}

		if len(rule.Actions) == 0 {
			violations[fmt.Sprintf("rules[%d].actions", i)] = "at least one action is required"
		}
		for j, action := range rule.Actions {
			if !actionRegex.MatchString(action) {
				violations[fmt.Sprintf("rules[%d].actions[%d]", i, j)] = "action contains invalid characters"
			}
		}

		if rule.Effect != EffectAllow && rule.Effect != EffectDeny {
			violations[fmt.Sprintf("rules[%d].effect", i)] = "effect must be either allow or deny"
		}
	}
	return violations
}
