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

package permission

import (
	"encoding/json"
	"fmt"

	dbmodel "github.com/lattice-hq/lattice/internal/system/database/model"
	"github.com/lattice-hq/lattice/internal/system/database/provider"
)

// schemeStoreInterface defines the interface for permission scheme store operations.
type schemeStoreInterface interface {
	CreatePermissionScheme(scheme PermissionScheme) error
	GetPermissionSchemeList(limit, offset int) ([]BasicPermissionScheme, error)
	GetPermissionSchemeCount() (int, error)
	GetPermissionScheme(schemeID string) (*PermissionScheme, error)
	GetPermissionSchemeByName(name string) (*PermissionScheme, error)
	UpdatePermissionScheme(scheme *PermissionScheme) error
	DeletePermissionScheme(schemeID string) error
	GetRoleReferenceCount(schemeID string) (int, error)
}

// schemeStore is the default implementation of schemeStoreInterface.
type schemeStore struct {
	dbProvider provider.DBProviderInterface
}

// newSchemeStore creates a new instance of the permission scheme store.
func newSchemeStore() schemeStoreInterface {
	return &schemeStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreatePermissionScheme persists a new permission scheme.
func (s *schemeStore) CreatePermissionScheme(scheme PermissionScheme) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rules, err := json.Marshal(scheme.Rules)
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}

	_, err = dbClient.Execute(queryCreatePermissionScheme, scheme.ID, scheme.Name, scheme.Description, string(rules))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetPermissionSchemeList retrieves a page of permission schemes.
func (s *schemeStore) GetPermissionSchemeList(limit, offset int) ([]BasicPermissionScheme, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetPermissionSchemeList, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	schemes := make([]BasicPermissionScheme, 0, len(results))
	for _, row := range results {
		scheme, err := buildSchemeFromRow(row)
		if err != nil {
			return nil, err
		}
		schemes = append(schemes, BasicPermissionScheme{
			ID:          scheme.ID,
			Name:        scheme.Name,
			Description: scheme.Description,
			RuleCount:   len(scheme.Rules),
		})
	}
	return schemes, nil
}

// GetPermissionSchemeCount returns the total number of permission schemes.
func (s *schemeStore) GetPermissionSchemeCount() (int, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetPermissionSchemeCount)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return parseCountResult(results)
}

// GetPermissionScheme retrieves a permission scheme by its ID.
func (s *schemeStore) GetPermissionScheme(schemeID string) (*PermissionScheme, error) {
	return s.getPermissionScheme(queryGetPermissionSchemeByID, schemeID)
}

// GetPermissionSchemeByName retrieves a permission scheme by its name.
func (s *schemeStore) GetPermissionSchemeByName(name string) (*PermissionScheme, error) {
	return s.getPermissionScheme(queryGetPermissionSchemeByName, name)
}

// UpdatePermissionScheme updates an existing permission scheme.
func (s *schemeStore) UpdatePermissionScheme(scheme *PermissionScheme) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rules, err := json.Marshal(scheme.Rules)
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryUpdatePermissionScheme,
		scheme.ID, scheme.Name, scheme.Description, string(rules))
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrSchemeNotFound
	}
	return nil
}

// DeletePermissionScheme deletes a permission scheme by its ID.
func (s *schemeStore) DeletePermissionScheme(schemeID string) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryDeletePermissionScheme, schemeID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetRoleReferenceCount counts the roles that reference the scheme.
func (s *schemeStore) GetRoleReferenceCount(schemeID string) (int, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetRoleReferenceCount, schemeID)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return parseCountResult(results)
}

func (s *schemeStore) getPermissionScheme(query dbmodel.DBQuery, arg string) (*PermissionScheme, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrSchemeNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}
	return buildSchemeFromRow(results[0])
}

// buildSchemeFromRow constructs a permission scheme from a database row.
func buildSchemeFromRow(row map[string]interface{}) (*PermissionScheme, error) {
	schemeID, ok := row["scheme_id"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse scheme_id as string")
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

	var rules []Rule
	switch raw := row["rules"].(type) {
	case string:
		if err := json.Unmarshal([]byte(raw), &rules); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rules: %w", err)
		}
	case []byte:
		if err := json.Unmarshal(raw, &rules); err != nil {
			return nil, fmt.Errorf("failed to unmarshal rules: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to parse rules")
	}

	return &PermissionScheme{
		ID:          schemeID,
		Name:        name,
		Description: description,
		Rules:       rules,
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
