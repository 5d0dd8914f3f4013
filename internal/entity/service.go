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

// Package entity handles the dynamic entity record operations.
package entity

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lattice-hq/lattice/internal/entitydef"
	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
	"github.com/lattice-hq/lattice/internal/system/log"
	"github.com/lattice-hq/lattice/internal/system/utils"
)

// ErrorDefinitionNotFound is the error returned when the addressed entity definition does not exist.
var ErrorDefinitionNotFound = serviceerror.ServiceError{
	Type:             serviceerror.ClientErrorType,
	Code:             "ENT-1008",
	Error:            "Entity definition not found",
	ErrorDescription: "No entity definition exists with the requested name",
}

// EntityServiceInterface defines the interface for the entity record service.
type EntityServiceInterface interface {
	CreateRecord(definition string, attributes map[string]any) (*EntityRecord, *serviceerror.ServiceError)
	GetRecordList(definition string, filter *Filter,
		params utils.PageParams) (*EntityRecordListResponse, *serviceerror.ServiceError)
	GetRecord(definition, recordID string) (*EntityRecord, *serviceerror.ServiceError)
	UpdateRecord(definition, recordID string, attributes map[string]any) (*EntityRecord, *serviceerror.ServiceError)
	DeleteRecord(definition, recordID string) *serviceerror.ServiceError
}

// entityService is the default implementation of EntityServiceInterface.
type entityService struct {
	store      entityStoreInterface
	defService entitydef.EntityDefServiceInterface
}

// NewEntityService creates a new instance of the entity record service.
func NewEntityService(defService entitydef.EntityDefServiceInterface) EntityServiceInterface {
	return &entityService{
		store:      newEntityStore(),
		defService: defService,
	}
}

// CreateRecord validates the attributes against the definition and creates a record.
func (s *entityService) CreateRecord(
	definition string, attributes map[string]any,
) (*EntityRecord, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityService"))

	def, svcErr := s.resolveDefinition(definition)
	if svcErr != nil {
		return nil, svcErr
	}

	attributes = entitydef.ApplyDefaults(def, attributes)
	if violations := entitydef.ValidateAttributes(def, attributes); len(violations) > 0 {
		return nil, ErrorInvalidAttributes.WithViolations(violations)
	}
	if svcErr := s.checkUniqueAttributes(def, attributes, ""); svcErr != nil {
		return nil, svcErr
	}

	now := time.Now().UTC()
	record := EntityRecord{
		ID:         utils.GenerateUUID(),
		Definition: def.Name,
		Attributes: attributes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.CreateRecord(def.ID, record); err != nil {
		logger.Error("Failed to create entity record", log.String(log.LoggerKeyEntityDefinition, def.Name),
			log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &record, nil
}

// GetRecordList retrieves a page of records, optionally narrowed by a filter.
func (s *entityService) GetRecordList(
	definition string, filter *Filter, params utils.PageParams,
) (*EntityRecordListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityService"))

	def, svcErr := s.resolveDefinition(definition)
	if svcErr != nil {
		return nil, svcErr
	}

	total, err := s.store.GetRecordCount(def.ID, filter)
	if err != nil {
		logger.Error("Failed to count entity records", log.String(log.LoggerKeyEntityDefinition, def.Name),
			log.Error(err))
		return nil, &ErrorInternalServerError
	}

	records, err := s.store.GetRecordList(def.ID, filter, params.PerPage, params.Offset())
	if err != nil {
		logger.Error("Failed to list entity records", log.String(log.LoggerKeyEntityDefinition, def.Name),
			log.Error(err))
		return nil, &ErrorInternalServerError
	}
	for i := range records {
		records[i].Definition = def.Name
	}

	return &EntityRecordListResponse{
		Total:   total,
		Records: records,
	}, nil
}

// GetRecord retrieves a record by its ID.
func (s *entityService) GetRecord(definition, recordID string) (*EntityRecord, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityService"))

	def, svcErr := s.resolveDefinition(definition)
	if svcErr != nil {
		return nil, svcErr
	}
	if strings.TrimSpace(recordID) == "" {
		return nil, &ErrorInvalidRecordID
	}

	record, err := s.store.GetRecord(def.ID, recordID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, &ErrorRecordNotFound
		}
		logger.Error("Failed to get entity record", log.String("recordID", recordID), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	record.Definition = def.Name
	return record, nil
}

// UpdateRecord validates and replaces the attributes of an existing record.
func (s *entityService) UpdateRecord(
	definition, recordID string, attributes map[string]any,
) (*EntityRecord, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityService"))

	def, svcErr := s.resolveDefinition(definition)
	if svcErr != nil {
		return nil, svcErr
	}
	if strings.TrimSpace(recordID) == "" {
		return nil, &ErrorInvalidRecordID
	}

	existing, err := s.store.GetRecord(def.ID, recordID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, &ErrorRecordNotFound
		}
		logger.Error("Failed to get entity record", log.String("recordID", recordID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	attributes = entitydef.ApplyDefaults(def, attributes)
	if violations := entitydef.ValidateAttributes(def, attributes); len(violations) > 0 {
		return nil, ErrorInvalidAttributes.WithViolations(violations)
	}
	if svcErr := s.checkUniqueAttributes(def, attributes, recordID); svcErr != nil {
		return nil, svcErr
	}

	record := &EntityRecord{
		ID:         recordID,
		Definition: def.Name,
		Attributes: attributes,
		CreatedAt:  existing.CreatedAt,
		UpdatedAt:  time.Now().UTC(),
	}
	if err := s.store.UpdateRecord(def.ID, record); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, &ErrorRecordNotFound
		}
		logger.Error("Failed to update entity record", log.String("recordID", recordID), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return record, nil
}

// DeleteRecord deletes a record by its ID.
func (s *entityService) DeleteRecord(definition, recordID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityService"))

	def, svcErr := s.resolveDefinition(definition)
	if svcErr != nil {
		return svcErr
	}
	if strings.TrimSpace(recordID) == "" {
		return &ErrorInvalidRecordID
	}

	if err := s.store.DeleteRecord(def.ID, recordID); err != nil {
		logger.Error("Failed to delete entity record", log.String("recordID", recordID), log.Error(err))
		return &ErrorInternalServerError
	}
	return nil
}

// resolveDefinition looks up the entity definition addressed by the request path.
func (s *entityService) resolveDefinition(
	definition string,
) (*entitydef.EntityDefinition, *serviceerror.ServiceError) {
	def, svcErr := s.defService.GetEntityDefinitionByName(definition)
	if svcErr != nil {
		if svcErr.Type == serviceerror.ClientErrorType {
			return nil, &ErrorDefinitionNotFound
		}
		return nil, &ErrorInternalServerError
	}
	return def, nil
}

// checkUniqueAttributes verifies that no other record holds the same value for
// any unique field present in the attributes.
func (s *entityService) checkUniqueAttributes(
	def *entitydef.EntityDefinition, attributes map[string]any, excludeRecordID string,
) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityService"))

	for _, field := range def.Fields {
		if !field.Unique {
			continue
		}
		value, present := attributes[field.Name]
		if !present || value == nil {
			continue
		}

		exists, err := s.store.AttributeValueExists(def.ID, field.Name,
			fmt.Sprintf("%v", value), excludeRecordID)
		if err != nil {
			logger.Error("Failed to check unique attribute", log.String("field", field.Name), log.Error(err))
			return &ErrorInternalServerError
		}
		if exists {
			return ErrorUniqueAttributeConflict.WithViolations(map[string]string{
				field.Name: "another record already holds this value",
			})
		}
	}
	return nil
}
