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

package entitydef

import (
	"encoding/json"
	"fmt"

	dbmodel "github.com/lattice-hq/lattice/internal/system/database/model"
	"github.com/lattice-hq/lattice/internal/system/database/provider"
)

// entityDefStoreInterface defines the interface for entity definition store operations.
type entityDefStoreInterface interface {
	CreateEntityDefinition(def EntityDefinition) error
	GetEntityDefinitionList(limit, offset int) ([]BasicEntityDefinition, error)
	GetEntityDefinitionCount() (int, error)
	GetEntityDefinition(defID string) (*EntityDefinition, error)
	GetEntityDefinitionByName(name string) (*EntityDefinition, error)
	UpdateEntityDefinition(def *EntityDefinition) error
	DeleteEntityDefinition(defID string) error
	GetRecordCount(defID string) (int, error)
}

// entityDefStore is the default implementation of entityDefStoreInterface.
type entityDefStore struct {
	dbProvider provider.DBProviderInterface
}

// newEntityDefStore creates a new instance of the entity definition store.
func newEntityDefStore() entityDefStoreInterface {
	return &entityDefStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateEntityDefinition persists a new entity definition.
func (s *entityDefStore) CreateEntityDefinition(def EntityDefinition) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	fields, err := json.Marshal(def.Fields)
	if err != nil {
		return fmt.Errorf("failed to marshal fields: %w", err)
	}

	_, err = dbClient.Execute(queryCreateEntityDefinition, def.ID, def.Name, def.Description, string(fields))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetEntityDefinitionList retrieves a page of entity definitions.
func (s *entityDefStore) GetEntityDefinitionList(limit, offset int) ([]BasicEntityDefinition, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetEntityDefinitionList, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	defs := make([]BasicEntityDefinition, 0, len(results))
	for _, row := range results {
		def, err := buildEntityDefFromRow(row)
		if err != nil {
			return nil, err
		}
		defs = append(defs, BasicEntityDefinition{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			FieldCount:  len(def.Fields),
		})
	}
	return defs, nil
}

// GetEntityDefinitionCount returns the total number of entity definitions.
func (s *entityDefStore) GetEntityDefinitionCount() (int, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetEntityDefinitionCount)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return parseCountResult(results)
}

// GetEntityDefinition retrieves an entity definition by its ID.
func (s *entityDefStore) GetEntityDefinition(defID string) (*EntityDefinition, error) {
	return s.getEntityDefinition(queryGetEntityDefinitionByID, defID)
}

// GetEntityDefinitionByName retrieves an entity definition by its name.
func (s *entityDefStore) GetEntityDefinitionByName(name string) (*EntityDefinition, error) {
	return s.getEntityDefinition(queryGetEntityDefinitionByName, name)
}

// UpdateEntityDefinition updates an existing entity definition.
func (s *entityDefStore) UpdateEntityDefinition(def *EntityDefinition) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	fields, err := json.Marshal(def.Fields)
	if err != nil {
		return fmt.Errorf("failed to marshal fields: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryUpdateEntityDefinitionByID,
		def.ID, def.Name, def.Description, string(fields))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrEntityDefinitionNotFound
	}
	return nil
}

// DeleteEntityDefinition deletes an entity definition by its ID.
func (s *entityDefStore) DeleteEntityDefinition(defID string) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryDeleteEntityDefinitionByID, defID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetRecordCount counts the records stored for the definition in the runtime database.
func (s *entityDefStore) GetRecordCount(defID string) (int, error) {
	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryCountRecordsByDefinition, defID)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return parseCountResult(results)
}

func (s *entityDefStore) getEntityDefinition(query dbmodel.DBQuery, arg string) (*EntityDefinition, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrEntityDefinitionNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	def, err := buildEntityDefFromRow(results[0])
	if err != nil {
		return nil, err
	}
	return def, nil
}

// buildEntityDefFromRow constructs an entity definition from a database row.
func buildEntityDefFromRow(row map[string]interface{}) (*EntityDefinition, error) {
	defID, ok := row["definition_id"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse definition_id as string")
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

	var fields []FieldDef
	switch raw := row["fields"].(type) {
	case string:
		if err := json.Unmarshal([]byte(raw), &fields); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fields: %w", err)
		}
	case []byte:
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fields: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to parse fields")
	}

	return &EntityDefinition{
		ID:          defID,
		Name:        name,
		Description: description,
		Fields:      fields,
	}, nil
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
