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

// Package entitydef handles the entity definition management operations.
package entitydef

import (
	"errors"
	"strings"

	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
	"github.com/lattice-hq/lattice/internal/system/log"
	"github.com/lattice-hq/lattice/internal/system/utils"
)

// EntityDefServiceInterface defines the interface for the entity definition service.
type EntityDefServiceInterface interface {
	CreateEntityDefinition(def *EntityDefinition) (*EntityDefinition, *serviceerror.ServiceError)
	GetEntityDefinitionList(params utils.PageParams) (*EntityDefinitionListResponse, *serviceerror.ServiceError)
	GetEntityDefinition(defID string) (*EntityDefinition, *serviceerror.ServiceError)
	GetEntityDefinitionByName(name string) (*EntityDefinition, *serviceerror.ServiceError)
	UpdateEntityDefinition(defID string, def *EntityDefinition) (*EntityDefinition, *serviceerror.ServiceError)
	DeleteEntityDefinition(defID string) *serviceerror.ServiceError
}

// entityDefService is the default implementation of EntityDefServiceInterface.
type entityDefService struct {
	store entityDefStoreInterface
}

// NewEntityDefService creates a new instance of the entity definition service.
func NewEntityDefService() EntityDefServiceInterface {
	return &entityDefService{
		store: newEntityDefStore(),
	}
}

// CreateEntityDefinition validates and creates a new entity definition.
func (s *entityDefService) CreateEntityDefinition(
	def *EntityDefinition,
) (*EntityDefinition, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityDefService"))

	if violations := validateDefinition(def); len(violations) > 0 {
		return nil, ErrorInvalidEntityDefinition.WithViolations(violations)
	}

	existing, err := s.store.GetEntityDefinitionByName(def.Name)
	if err != nil && !errors.Is(err, ErrEntityDefinitionNotFound) {
		logger.Error("Failed to check existing entity definition by name", log.Error(err),
			log.String("name", def.Name))
		return nil, &ErrorInternalServerError
	}
	if existing != nil {
		return nil, &ErrorEntityDefinitionAlreadyExists
	}

	def.ID = utils.GenerateUUID()
	if err := s.store.CreateEntityDefinition(*def); err != nil {
		logger.Error("Failed to create entity definition", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("Entity definition created", log.String("id", def.ID), log.String("name", def.Name))
	return def, nil
}

// GetEntityDefinitionList retrieves a page of entity definitions.
func (s *entityDefService) GetEntityDefinitionList(
	params utils.PageParams,
) (*EntityDefinitionListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityDefService"))

	total, err := s.store.GetEntityDefinitionCount()
	if err != nil {
		logger.Error("Failed to count entity definitions", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	defs, err := s.store.GetEntityDefinitionList(params.PerPage, params.Offset())
	if err != nil {
		logger.Error("Failed to list entity definitions", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &EntityDefinitionListResponse{
		Total:       total,
		Definitions: defs,
	}, nil
}

// GetEntityDefinition retrieves an entity definition by its ID.
func (s *entityDefService) GetEntityDefinition(defID string) (*EntityDefinition, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityDefService"))

	if strings.TrimSpace(defID) == "" {
		return nil, &ErrorInvalidEntityDefinitionID
	}

	def, err := s.store.GetEntityDefinition(defID)
	if err != nil {
		if errors.Is(err, ErrEntityDefinitionNotFound) {
			return nil, &ErrorEntityDefinitionNotFound
		}
		logger.Error("Failed to get entity definition", log.String("id", defID), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return def, nil
}

// GetEntityDefinitionByName retrieves an entity definition by its name.
func (s *entityDefService) GetEntityDefinitionByName(name string) (*EntityDefinition, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityDefService"))

	if strings.TrimSpace(name) == "" {
		return nil, &ErrorInvalidEntityDefinitionID
	}

	def, err := s.store.GetEntityDefinitionByName(name)
	if err != nil {
		if errors.Is(err, ErrEntityDefinitionNotFound) {
			return nil, &ErrorEntityDefinitionNotFound
		}
		logger.Error("Failed to get entity definition by name", log.String("name", name), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return def, nil
}

// UpdateEntityDefinition validates and updates an existing entity definition.
func (s *entityDefService) UpdateEntityDefinition(
	defID string, def *EntityDefinition,
) (*EntityDefinition, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityDefService"))

	if strings.TrimSpace(defID) == "" {
		return nil, &ErrorInvalidEntityDefinitionID
	}
	if violations := validateDefinition(def); len(violations) > 0 {
		return nil, ErrorInvalidEntityDefinition.WithViolations(violations)
	}

	existing, err := s.store.GetEntityDefinitionByName(def.Name)
	if err != nil && !errors.Is(err, ErrEntityDefinitionNotFound) {
		logger.Error("Failed to check existing entity definition by name", log.Error(err),
			log.String("name", def.Name))
		return nil, &ErrorInternalServerError
	}
	if existing != nil && existing.ID != defID {
		return nil, &ErrorEntityDefinitionAlreadyExists
	}

	def.ID = defID
	if err := s.store.UpdateEntityDefinition(def); err != nil {
		if errors.Is(err, ErrEntityDefinitionNotFound) {
			return nil, &ErrorEntityDefinitionNotFound
		}
		logger.Error("Failed to update entity definition", log.String("id", defID), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return def, nil
}

// DeleteEntityDefinition deletes an entity definition. The delete is refused
// while records for the definition still exist in the runtime database.
func (s *entityDefService) DeleteEntityDefinition(defID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityDefService"))

	if strings.TrimSpace(defID) == "" {
		return &ErrorInvalidEntityDefinitionID
	}

	if _, err := s.store.GetEntityDefinition(defID); err != nil {
		if errors.Is(err, ErrEntityDefinitionNotFound) {
			return &ErrorEntityDefinitionNotFound
		}
		logger.Error("Failed to get entity definition", log.String("id", defID), log.Error(err))
		return &ErrorInternalServerError
	}

	recordCount, err := s.store.GetRecordCount(defID)
	if err != nil {
		logger.Error("Failed to count records for entity definition", log.String("id", defID), log.Error(err))
		return &ErrorInternalServerError
	}
	if recordCount > 0 {
		return &ErrorEntityDefinitionInUse
	}

	if err := s.store.DeleteEntityDefinition(defID); err != nil {
		logger.Error("Failed to delete entity definition", log.String("id", defID), log.Error(err))
		return &ErrorInternalServerError
	}

	logger.Debug("Entity definition deleted", log.String("id", defID))
	return nil
}
