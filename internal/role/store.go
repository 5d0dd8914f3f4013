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

package role

import (
	"errors"
	"fmt"

	dbmodel "github.com/lattice-hq/lattice/internal/system/database/model"
	"github.com/lattice-hq/lattice/internal/system/database/provider"
)

// roleStoreInterface defines the interface for role store operations.
type roleStoreInterface interface {
	CreateRole(role Role) error
	GetRoleList(limit, offset int) ([]BasicRole, error)
	GetRoleCount() (int, error)
	GetRole(roleID string) (*Role, error)
	GetRoleByName(name string) (*Role, error)
	UpdateRole(role *Role) error
	DeleteRole(roleID string) error
	CreateAssignment(userID, roleID string) error
	DeleteAssignment(userID, roleID string) error
	IsUserAssigned(userID, roleID string) (bool, error)
	GetRoleAssignmentCount(roleID string) (int, error)
	GetRoleUsers(roleID string) ([]string, error)
	GetUserRoles(userID string) ([]Role, error)
}

// roleStore is the default implementation of roleStoreInterface.
type roleStore struct {
	dbProvider provider.DBProviderInterface
}

// newRoleStore creates a new instance of the role store.
func newRoleStore() roleStoreInterface {
	return &roleStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateRole persists a new role.
func (s *roleStore) CreateRole(role Role) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryCreateRole, role.ID, role.Name, role.Description, role.SchemeID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetRoleList retrieves a page of roles with their member counts.
func (s *roleStore) GetRoleList(limit, offset int) ([]BasicRole, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetRoleList, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	roles := make([]BasicRole, 0, len(results))
	for _, row := range results {
		role, err := buildRoleFromRow(row)
		if err != nil {
			return nil, err
		}
		userCount := 0
		switch count := row["user_count"].(type) {
		case int64:
			userCount = int(count)
		case int:
			userCount = count
		case float64:
			userCount = int(count)
		}
		roles = append(roles, BasicRole{
			ID:          role.ID,
			Name:        role.Name,
			Description: role.Description,
			SchemeID:    role.SchemeID,
			UserCount:   userCount,
		})
	}
	return roles, nil
}

// GetRoleCount returns the total number of roles.
func (s *roleStore) GetRoleCount() (int, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetRoleCount)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return parseCountResult(results)
}

// GetRole retrieves a role by its ID.
func (s *roleStore) GetRole(roleID string) (*Role, error) {
	return s.getRole(queryGetRoleByID, roleID)
}

// GetRoleByName retrieves a role by its name.
func (s *roleStore) GetRoleByName(name string) (*Role, error) {
	return s.getRole(queryGetRoleByName, name)
}

// UpdateRole updates an existing role.
func (s *roleStore) UpdateRole(role *Role) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryUpdateRole, role.ID, role.Name, role.Description, role.SchemeID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrRoleNotFound
	}
	return nil
}

// DeleteRole deletes a role and any remaining user assignments in a single transaction.
func (s *roleStore) DeleteRole(roleID string) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(queryDeleteRoleAssignments.Query, roleID); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if _, err := tx.Exec(queryDeleteRole.Query, roleID); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// CreateAssignment assigns a user to a role.
func (s *roleStore) CreateAssignment(userID, roleID string) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryCreateAssignment, userID, roleID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// DeleteAssignment removes a user from a role.
func (s *roleStore) DeleteAssignment(userID, roleID string) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryDeleteAssignment, userID, roleID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// IsUserAssigned reports whether the user holds the role.
func (s *roleStore) IsUserAssigned(userID, roleID string) (bool, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return false, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetAssignment, userID, roleID)
	if err != nil {
		return false, fmt.Errorf("failed to execute query: %w", err)
	}
	count, err := parseCountResult(results)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetRoleAssignmentCount counts the users assigned to the role.
func (s *roleStore) GetRoleAssignmentCount(roleID string) (int, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetRoleAssignmentCount, roleID)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
	return parseCountResult(results)
}

// GetRoleUsers lists the ids of the users assigned to the role.
func (s *roleStore) GetRoleUsers(roleID string) ([]string, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetRoleUsers, roleID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	userIDs := make([]string, 0, len(results))
	for _, row := range results {
		userID, ok := row["user_id"].(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse user_id as string")
		}
		userIDs = append(userIDs, userID)
	}
	return userIDs, nil
}

// GetUserRoles lists the roles the user is assigned to.
func (s *roleStore) GetUserRoles(userID string) ([]Role, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetUserRoles, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	roles := make([]Role, 0, len(results))
	for _, row := range results {
		role, err := buildRoleFromRow(row)
		if err != nil {
			return nil, err
		}
		roles = append(roles, *role)
	}
	return roles, nil
}

func (s *roleStore) getRole(query dbmodel.DBQuery, arg string) (*Role, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrRoleNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}
	return buildRoleFromRow(results[0])
}

// buildRoleFromRow constructs a role from a database row.
func buildRoleFromRow(row map[string]interface{}) (*Role, error) {
	roleID, ok := row["role_id"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse role_id as string")
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

	schemeID := ""
	if row["scheme_id"] != nil {
		schemeID, ok = row["scheme_id"].(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse scheme_id as string")
		}
	}

	return &Role{
		ID:          roleID,
		Name:        name,
		Description: description,
		SchemeID:    schemeID,
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
