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

package user

import (
	"encoding/json"
	"fmt"

	"github.com/lattice-hq/lattice/internal/system/crypto/hash"
	dbmodel "github.com/lattice-hq/lattice/internal/system/database/model"
	"github.com/lattice-hq/lattice/internal/system/database/provider"
)

// userStoreInterface defines the interface for user store operations.
type userStoreInterface interface {
	CreateUser(user User) error
	GetUserList(limit, offset int) ([]BasicUser, error)
	GetUserCount() (int, error)
	GetUser(userID string) (*User, error)
	GetUserByUsername(username string) (*User, error)
	GetUserByEmail(email string) (*User, error)
	UpdateUser(user *User) error
	UpdateUserCredential(userID string, credential hash.Credential) error
	DeleteUser(userID string) error
}

// userStore is the default implementation of userStoreInterface.
type userStore struct {
	dbProvider provider.DBProviderInterface
}

// newUserStore creates a new instance of the user store.
func newUserStore() userStoreInterface {
	return &userStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateUser persists a new user with their hashed credential.
func (s *userStore) CreateUser(user User) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	credential, err := marshalCredential(user.credential)
	if err != nil {
		return err
	}

	_, err = dbClient.Execute(queryCreateUser,
		user.ID, user.Username, user.Email, user.FirstName, user.LastName, user.Active, credential)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetUserList retrieves a page of users.
func (s *userStore) GetUserList(limit, offset int) ([]BasicUser, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetUserList, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	users := make([]BasicUser, 0, len(results))
	for _, row := range results {
		userID, _ := row["user_id"].(string)
		username, _ := row["username"].(string)
		email, _ := row["email"].(string)
		users = append(users, BasicUser{
			ID:       userID,
			Username: username,
			Email:    email,
			Active:   parseBoolColumn(row["active"]),
		})
	}
	return users, nil
}

// GetUserCount returns the total number of users.
func (s *userStore) GetUserCount() (int, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return 0, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetUserCount)
	if err != nil {
		return 0, fmt.Errorf("failed to execute query: %w", err)
	}
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

// GetUser retrieves a user by ID.
func (s *userStore) GetUser(userID string) (*User, error) {
	return s.getUser(queryGetUserByID, userID)
}

// GetUserByUsername retrieves a user by username.
func (s *userStore) GetUserByUsername(username string) (*User, error) {
	return s.getUser(queryGetUserByUsername, username)
}

// GetUserByEmail retrieves a user by email.
func (s *userStore) GetUserByEmail(email string) (*User, error) {
	return s.getUser(queryGetUserByEmail, email)
}

// UpdateUser updates a user's profile attributes. The credential is updated
// separately via UpdateUserCredential.
func (s *userStore) UpdateUser(user *User) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryUpdateUserByID,
		user.ID, user.Username, user.Email, user.FirstName, user.LastName, user.Active)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpdateUserCredential replaces the user's stored credential.
func (s *userStore) UpdateUserCredential(userID string, credential hash.Credential) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	serialized, err := marshalCredential(&credential)
	if err != nil {
		return err
	}

	rowsAffected, err := dbClient.Execute(queryUpdateUserCredential, userID, serialized)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// DeleteUser deletes a user by ID.
func (s *userStore) DeleteUser(userID string) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryDeleteUserByID, userID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

func (s *userStore) getUser(query dbmodel.DBQuery, arg string) (*User, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrUserNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}
	return buildUserFromRow(results[0])
}

// buildUserFromRow constructs a user from a database row.
func buildUserFromRow(row map[string]interface{}) (*User, error) {
	userID, ok := row["user_id"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse user_id as string")
	}
	username, ok := row["username"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse username as string")
	}
	email, ok := row["email"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse email as string")
	}

	firstName, _ := row["first_name"].(string)
	lastName, _ := row["last_name"].(string)

	user := &User{
		ID:        userID,
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Active:    parseBoolColumn(row["active"]),
	}

	switch raw := row["credential"].(type) {
	case string:
		user.credential = &hash.Credential{}
		if err := json.Unmarshal([]byte(raw), user.credential); err != nil {
			return nil, fmt.Errorf("failed to unmarshal credential: %w", err)
		}
	case []byte:
		user.credential = &hash.Credential{}
		if err := json.Unmarshal(raw, user.credential); err != nil {
			return nil, fmt.Errorf("failed to unmarshal credential: %w", err)
		}
	}

	return user, nil
}

// parseBoolColumn handles the boolean representations the supported drivers return.
func parseBoolColumn(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case int:
		return v != 0
	default:
		return false
	}
}

func marshalCredential(credential *hash.Credential) (string, error) {
	if credential == nil {
		return "", fmt.Errorf("user credential is not set")
	}
	serialized, err := json.Marshal(credential)
	if err != nil {
		return "", fmt.Errorf("failed to marshal credential: %w", err)
	}
	return string(serialized), nil
}
