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

// Package user handles the console user management operations.
package user

import (
	"errors"
	"regexp"
	"strings"

	"github.com/lattice-hq/lattice/internal/system/crypto/hash"
	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
	"github.com/lattice-hq/lattice/internal/system/log"
	"github.com/lattice-hq/lattice/internal/system/utils"
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,50}$`)
	emailRegex    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

const minPasswordLength = 8

// UserServiceInterface defines the interface for the user service.
type UserServiceInterface interface {
	CreateUser(request *User, password string) (*User, *serviceerror.ServiceError)
	GetUserList(params utils.PageParams) (*UserListResponse, *serviceerror.ServiceError)
	GetUser(userID string) (*User, *serviceerror.ServiceError)
	UpdateUser(userID string, request *User, password string) (*User, *serviceerror.ServiceError)
	DeleteUser(userID string) *serviceerror.ServiceError
	VerifyCredentials(username, password string) (*User, *serviceerror.ServiceError)
}

// userService is the default implementation of UserServiceInterface.
type userService struct {
	store userStoreInterface
}

// NewUserService creates a new instance of the user service.
func NewUserService() UserServiceInterface {
	return &userService{
		store: newUserStore(),
	}
}

// CreateUser validates and creates a new user. The password is hashed with a
// fresh salt; the plaintext is never stored.
func (s *userService) CreateUser(request *User, password string) (*User, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "UserService"))

	if violations := validateUser(request, password, true); len(violations) > 0 {
		return nil, ErrorInvalidUser.WithViolations(violations)
	}
	if svcErr := s.checkUniqueness(request.Username, request.Email, ""); svcErr != nil {
		return nil, svcErr
	}

	credential := hash.NewCredential([]byte(password))
	request.ID = utils.GenerateUUID()
	request.credential = &credential

	if err := s.store.CreateUser(*request); err != nil {
		logger.Error("Failed to create user", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("User created", log.String("userID", request.ID),
		log.String("username", log.MaskString(request.Username)))
	return request, nil
}

// GetUserList retrieves a page of users.
func (s *userService) GetUserList(params utils.PageParams) (*UserListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "UserService"))

	total, err := s.store.GetUserCount()
	if err != nil {
		logger.Error("Failed to count users", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	users, err := s.store.GetUserList(params.PerPage, params.Offset())
	if err != nil {
		logger.Error("Failed to list users", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &UserListResponse{
		Total: total,
		Users: users,
	}, nil
}

// GetUser retrieves a user by ID.
func (s *userService) GetUser(userID string) (*User, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "UserService"))

	if strings.TrimSpace(userID) == "" {
		return nil, &ErrorInvalidUserID
	}

	user, err := s.store.GetUser(userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, &ErrorUserNotFound
		}
		logger.Error("Failed to get user", log.String("userID", userID), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return user, nil
}

// UpdateUser validates and updates an existing user. A non-empty password
// replaces the stored credential.
func (s *userService) UpdateUser(
	userID string, request *User, password string,
) (*User, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "UserService"))

	if strings.TrimSpace(userID) == "" {
		return nil, &ErrorInvalidUserID
	}
	if violations := validateUser(request, password, false); len(violations) > 0 {
		return nil, ErrorInvalidUser.WithViolations(violations)
	}
	if svcErr := s.checkUniqueness(request.Username, request.Email, userID); svcErr != nil {
		return nil, svcErr
	}

	request.ID = userID
	if err := s.store.UpdateUser(request); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, &ErrorUserNotFound
		}
		logger.Error("Failed to update user", log.String("userID", userID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	if password != "" {
		credential := hash.NewCredential([]byte(password))
		if err := s.store.UpdateUserCredential(userID, credential); err != nil {
			logger.Error("Failed to update user credential", log.String("userID", userID), log.Error(err))
			return nil, &ErrorInternalServerError
		}
	}
	return request, nil
}

// DeleteUser deletes a user by ID.
func (s *userService) DeleteUser(userID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "UserService"))

	if strings.TrimSpace(userID) == "" {
		return &ErrorInvalidUserID
	}

	if err := s.store.DeleteUser(userID); err != nil {
		logger.Error("Failed to delete user", log.String("userID", userID), log.Error(err))
		return &ErrorInternalServerError
	}
	return nil
}

// VerifyCredentials checks a username and password pair against the stored
// credential. Lookup misses and hash mismatches return the same error.
func (s *userService) VerifyCredentials(username, password string) (*User, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "UserService"))

	if username == "" || password == "" {
		return nil, &ErrorInvalidCredentials
	}

	user, err := s.store.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, &ErrorInvalidCredentials
		}
		logger.Error("Failed to get user by username", log.Error(err),
			log.String("username", log.MaskString(username)))
		return nil, &ErrorInternalServerError
	}

	if user.credential == nil || !user.credential.Verify([]byte(password)) {
		return nil, &ErrorInvalidCredentials
	}
	if !user.Active {
		return nil, &ErrorInvalidCredentials
	}
	return user, nil
}

// checkUniqueness verifies that the username and email are not taken by
// another user.
func (s *userService) checkUniqueness(username, email, excludeUserID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "UserService"))

	existing, err := s.store.GetUserByUsername(username)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		logger.Error("Failed to check existing user by username", log.Error(err))
		return &ErrorInternalServerError
	}
	if existing != nil && existing.ID != excludeUserID {
		return &ErrorUsernameAlreadyExists
	}

	existing, err = s.store.GetUserByEmail(email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		logger.Error("Failed to check existing user by email", log.Error(err))
		return &ErrorInternalServerError
	}
	if existing != nil && existing.ID != excludeUserID {
		return &ErrorEmailAlreadyExists
	}
	return nil
}

// validateUser checks the user payload and returns a field to message
// violations map. The password is required only on create.
func validateUser(user *User, password string, passwordRequired bool) map[string]string {
	violations := make(map[string]string)

	if !usernameRegex.MatchString(user.Username) {
		violations["username"] = "username must be 3 to 50 characters of letters, digits, dot, " +
			"underscore or hyphen"
	}
	if !emailRegex.MatchString(user.Email) {
		violations["email"] = "email must be a valid address"
	}
	if passwordRequired && password == "" {
		violations["password"] = "password is required"
	}
	if password != "" && len(password) < minPasswordLength {
		violations["password"] = "password must be at least 8 characters"
	}
	return violations
}
