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

package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lattice-hq/lattice/internal/system/database/provider"
)

// entityStoreInterface defines the interface for entity record store operations.
type entityStoreInterface interface {
	CreateRecord(defID string, record EntityRecord) error
	GetRecordList(defID string, filter *Filter, limit, offset int) ([]EntityRecord, error)
	GetRecordCount(defID string, filter *Filter) (int, error)
	GetRecord(defID, recordID string) (*EntityRecord, error)
	UpdateRecord(defID string, record *EntityRecord) error
	DeleteRecord(defID, recordID string) error
	AttributeValueExists(defID, field, value, excludeRecordID string) (bool, error)
}

// entityStore is the default implementation of entityStoreInterface. Records
// live in the runtime database.
type entityStore struct {
	dbProvider provider.DBProviderInterface
}

// newEntityStore creates a new instance of the entity record store.
func newEntityStore() entityStoreInterface {
	return &entityStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateRecord persists a new entity record.
func (s *entityStore) CreateRecord(defID string, record EntityRecord) error {
	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	attributes, err := json.Marshal(record.Attributes)
	if err != nil {
		return fmt.Errorf("failed to marshal attributes: %w", err)
	}

	_, err = dbClient.Execute(queryCreateEntityRecord,
		record.ID, defID, string(attributes), record.CreatedAt, record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetRecordList retrieves a page of records, optionally narrowed by a filter.
func (s *entityStore) GetRecordList(
	defID string, filter *Filter, limit, offset int,
) ([]EntityRecord, error) {
	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	var results []map[string]interface{}
	if filter == nil {
		results, err = dbClient.Query(buildRecordListQuery(nil), defID, limit, offset)
	} else {
		results, err = dbClient.Query(buildRecordListQuery(filter), defID, filter.Value, limit, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	records := make([]EntityRecord, 0, len(results))
	for _, row := range results {
		record, err := buildRecordFromRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, nil
}

// GetRecordCount counts the records of a definition, optionally narrowed by a filter.
func (s *entityStore) GetRecordCount(defID string, filter *Filter) (int, error) {
	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	var results []map[string]interface{}
	if filter == nil {
		results, err = dbClient.Query(buildRecordCountQuery(nil), defID)
	} else {
		results, err = dbClient.Query(buildRecordCountQuery(filter), defID, filter.Value)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return parseCountResult(results)
}

// GetRecord retrieves a record by its ID.
func (s *entityStore) GetRecord(defID, recordID string) (*EntityRecord, error) {
	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetEntityRecordByID, defID, recordID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrRecordNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}
	return buildRecordFromRow(results[0])
}

// UpdateRecord updates the attributes of an existing record.
func (s *entityStore) UpdateRecord(defID string, record *EntityRecord) error {
	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	attributes, err := json.Marshal(record.Attributes)
	if err != nil {
		return fmt.Errorf("failed to marshal attributes: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryUpdateEntityRecordByID,
		defID, record.ID, string(attributes), record.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// DeleteRecord deletes a record by its ID.
func (s *entityStore) DeleteRecord(defID, recordID string) error {
	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryDeleteEntityRecordByID, defID, recordID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// AttributeValueExists reports whether another record of the definition
// already holds the given attribute value.
func (s *entityStore) AttributeValueExists(defID, field, value, excludeRecordID string) (bool, error) {
	dbClient, err := s.dbProvider.GetDBClient("runtime")
	if err != nil {
		return false, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(buildAttributeExistsQuery(field), defID, value, excludeRecordID)
	if err != nil {
		return false, fmt.Errorf("failed to execute query: %w", err)
	}
	count, err := parseCountResult(results)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// buildRecordFromRow constructs an entity record from a database row.
func buildRecordFromRow(row map[string]interface{}) (*EntityRecord, error) {
	recordID, ok := row["record_id"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse record_id as string")
	}

	var attributes map[string]any
	switch raw := row["attributes"].(type) {
	case string:
		if err := json.Unmarshal([]byte(raw), &attributes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attributes: %w", err)
		}
	case []byte:
		if err := json.Unmarshal(raw, &attributes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attributes: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to parse attributes")
	}

	createdAt, err := parseTimestamp(row["created_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	updatedAt, err := parseTimestamp(row["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return &EntityRecord{
		ID:         recordID,
		Attributes: attributes,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}

// parseTimestamp handles the timestamp representations the supported drivers return.
func parseTimestamp(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case string:
		return time.Parse(time.RFC3339Nano, v)
	case []byte:
		return time.Parse(time.RFC3339Nano, string(v))
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
