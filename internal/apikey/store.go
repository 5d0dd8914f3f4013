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

package apikey

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lattice-hq/lattice/internal/system/crypto/hash"
	dbmodel "github.com/lattice-hq/lattice/internal/system/database/model"
	"github.com/lattice-hq/lattice/internal/system/database/provider"
)

// apiKeyStoreInterface defines the interface for API key store operations.
type apiKeyStoreInterface interface {
	CreateAPIKey(key APIKey) error
	GetAPIKeyList(limit, offset int) ([]APIKey, error)
	GetAPIKeyCount() (int, error)
	GetAPIKey(keyID string) (*APIKey, error)
	GetAPIKeyByPrefix(prefix string) (*APIKey, error)
	RevokeAPIKey(keyID string) error
	DeleteAPIKey(keyID string) error
}

// apiKeyStore is the default implementation of apiKeyStoreInterface.
type apiKeyStore struct {
	dbProvider provider.DBProviderInterface
}

// newAPIKeyStore creates a new instance of the API key store.
func newAPIKeyStore() apiKeyStoreInterface {
	return &apiKeyStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateAPIKey persists a new API key record.
func (s *apiKeyStore) CreateAPIKey(key APIKey) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	credential, err := json.Marshal(key.credential)
	if err != nil {
		return fmt.Errorf("failed to marshal credential: %w", err)
	}

	var expiresAt interface{}
	if key.ExpiresAt != nil {
		expiresAt = key.ExpiresAt.UTC().Format(time.RFC3339Nano)
	}

	_, err = dbClient.Execute(queryCreateAPIKey, key.ID, key.Name, key.Prefix, string(credential),
		key.CreatedAt.UTC().Format(time.RFC3339Nano), expiresAt, key.Revoked)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetAPIKeyList retrieves a page of API keys.
func (s *apiKeyStore) GetAPIKeyList(limit, offset int) ([]APIKey, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetAPIKeyList, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	keys := make([]APIKey, 0, len(results))
	for _, row := range results {
		key, err := buildAPIKeyFromRow(row)
		if err != nil {
			return nil, err
		}
		keys = append(keys, *key)
	}
	return keys, nil
}

// GetAPIKeyCount returns the total number of API keys.
func (s *apiKeyStore) GetAPIKeyCount() (int, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetAPIKeyCount)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return parseCountResult(results)
}

// GetAPIKey retrieves an API key by its ID.
func (s *apiKeyStore) GetAPIKey(keyID string) (*APIKey, error) {
	return s.getAPIKey(queryGetAPIKeyByID, keyID)
}

// GetAPIKeyByPrefix retrieves an API key by its prefix.
func (s *apiKeyStore) GetAPIKeyByPrefix(prefix string) (*APIKey, error) {
	return s.getAPIKey(queryGetAPIKeyByPrefix, prefix)
}

// RevokeAPIKey marks an API key as revoked.
func (s *apiKeyStore) RevokeAPIKey(keyID string) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryRevokeAPIKey, keyID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrAPIKeyNotFound
	}
	return nil
}

// DeleteAPIKey deletes an API key by its ID.
func (s *apiKeyStore) DeleteAPIKey(keyID string) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryDeleteAPIKey, keyID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

func (s *apiKeyStore) getAPIKey(query dbmodel.DBQuery, arg string) (*APIKey, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrAPIKeyNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}
	return buildAPIKeyFromRow(results[0])
}

// buildAPIKeyFromRow constructs an API key from a database row.
func buildAPIKeyFromRow(row map[string]interface{}) (*APIKey, error) {
	keyID, ok := row["key_id"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse key_id as string")
	}
	name, ok := row["name"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse name as string")
	}
	prefix, ok := row["prefix"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse prefix as string")
	}

	createdAt, err := parseTimestamp(row["created_at"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	var expiresAt *time.Time
	if row["expires_at"] != nil {
		parsed, err := parseTimestamp(row["expires_at"])
		if err != nil {
			return nil, fmt.Errorf("failed to parse expires_at: %w", err)
		}
		expiresAt = &parsed
	}

	revoked, err := parseBoolColumn(row["revoked"])
	if err != nil {
		return nil, fmt.Errorf("failed to parse revoked: %w", err)
	}

	key := &APIKey{
		ID:        keyID,
		Name:      name,
		Prefix:    prefix,
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
		Revoked:   revoked,
	}

	switch raw := row["credential"].(type) {
	case string:
		var credential hash.Credential
		if err := json.Unmarshal([]byte(raw), &credential); err != nil {
			return nil, fmt.Errorf("failed to unmarshal credential: %w", err)
		}
		key.credential = &credential
	case []byte:
		var credential hash.Credential
		if err := json.Unmarshal(raw, &credential); err != nil {
			return nil, fmt.Errorf("failed to unmarshal credential: %w", err)
		}
		key.credential = &credential
	}
	return key, nil
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

// parseBoolColumn converts a boolean column value to bool. SQLite stores
// booleans as integers.
func parseBoolColumn(value interface{}) (bool, error) {
	switch raw := value.(type) {
	case bool:
		return raw, nil
	case int64:
		return raw != 0, nil
	case int:
		return raw != 0, nil
	default:
		return false, fmt.Errorf("unsupported bool type %T", value)
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
