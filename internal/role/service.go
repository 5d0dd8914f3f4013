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

// Package role handles the role management and user assignment operations.
package role

import (
	"errors"
	"regexp"
	"strings"

	"github.com/lattice-hq/lattice/internal/permission"
	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
	"github.com/lattice-hq/lattice/internal/system/log"
	"github.com/lattice-hq/lattice/internal/system/utils"
	"github.com/lattice-hq/lattice/internal/user"
)

var roleNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9 _-]{0,62}$`)

// RoleServiceInterface defines the interface for the role service.
type RoleServiceInterface interface {
	CreateRole(role *Role) (*Role, *serviceerror.ServiceError)
	GetRoleList(params utils.PageParams) (*RoleListResponse, *serviceerror.ServiceError)
	GetRole(roleID string) (*Role, *serviceerror.ServiceError)
	UpdateRole(roleID string, role *Role) (*Role, *serviceerror.ServiceError)
	DeleteRole(roleID string) *serviceerror.ServiceError
	AssignUser(roleID, userID string) *serviceerror.ServiceError
	UnassignUser(roleID, userID string) *serviceerror.ServiceError
	GetRoleUsers(roleID string) (*RoleUsersResponse, *serviceerror.ServiceError)
	GetUserRoles(userID string) (*UserRolesResponse, *serviceerror.ServiceError)
}

// roleService is the default implementation of RoleServiceInterface.
type roleService struct {
	store         roleStoreInterface
	userService   user.UserServiceInterface
	schemeService permission.SchemeServiceInterface
}

// NewRoleService creates a new instance of the role service.
func NewRoleService(
	userService user.UserServiceInterface, schemeService permission.SchemeServiceInterface,
) RoleServiceInterface {
	return &roleService{
		store:         newRoleStore(),
		userService:   userService,
		schemeService: schemeService,
	}
}

// CreateRole validates and creates a new role.
func (s *roleService) CreateRole(role *Role) (*Role, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RoleService"))

	if violations := validateRole(role); len(violations) > 0 {
		return nil, ErrorInvalidRole.WithViolations(violations)
	}
	if svcErr := s.checkSchemeReference(role.SchemeID); svcErr != nil {
		return nil, svcErr
	}

	existing, err := s.store.GetRoleByName(role.Name)
	if err != nil && !errors.Is(err, ErrRoleNotFound) {
		logger.Error("Failed to check existing role by name", log.Error(err), log.String("name", role.Name))
		return nil, &ErrorInternalServerError
	}
	if existing != nil {
		return nil, &ErrorRoleAlreadyExists
	}

	role.ID = utils.GenerateUUID()
	if err := s.store.CreateRole(*role); err != nil {
		logger.Error("Failed to create role", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("Role created", log.String("id", role.ID), log.String("name", role.Name))
	return role, nil
}

// GetRoleList retrieves a page of roles.
func (s *roleService) GetRoleList(params utils.PageParams) (*RoleListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RoleService"))

	total, err := s.store.GetRoleCount()
	if err != nil {
		logger.Error("Failed to count roles", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	roles, err := s.store.GetRoleList(params.PerPage, params.Offset())
	if err != nil {
		logger.Error("Failed to list roles", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &RoleListResponse{
		Total: total,
		Roles: roles,
	}, nil
}

// GetRole retrieves a role by its ID.
func (s *roleService) GetRole(roleID string) (*Role, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RoleService"))

	if strings.TrimSpace(roleID) == "" {
		return nil, &ErrorInvalidRoleID
	}

	role, err := s.store.GetRole(roleID)
	if err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			return nil, &ErrorRoleNotFound
		}
		logger.Error("Failed to get role", log.String("id", roleID), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return role, nil
}

// UpdateRole validates and updates an existing role.
func (s *roleService) UpdateRole(roleID string, role *Role) (*Role, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RoleService"))

	if strings.TrimSpace(roleID) == "" {
		return nil, &ErrorInvalidRoleID
	}
	if violations := validateRole(role); len(violations) > 0 {
		return nil, ErrorInvalidRole.WithViolations(violations)
	}
	if svcErr := s.checkSchemeReference(role.SchemeID); svcErr != nil {
		return nil, svcErr
	}

	existing, err := s.store.GetRoleByName(role.Name)
	if err != nil && !errors.Is(err, ErrRoleNotFound) {
		logger.Error("Failed to check existing role by name", log.Error(err), log.String("name", role.Name))
		return nil, &ErrorInternalServerError
	}
	if existing != nil && existing.ID != roleID {
		return nil, &ErrorRoleAlreadyExists
	}

	role.ID = roleID
	if err := s.store.UpdateRole(role); err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			return nil, &ErrorRoleNotFound
		}
		logger.Error("Failed to update role", log.String("id", roleID), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return role, nil
}

// DeleteRole deletes a role. Deletion is refused while users are assigned to the role.
func (s *roleService) DeleteRole(roleID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RoleService"))

	if strings.TrimSpace(roleID) == "" {
		return &ErrorInvalidRoleID
	}

	if _, err := s.store.GetRole(roleID); err != nil {
		if errors.Is(err, ErrRoleNotFound) {
			return &ErrorRoleNotFound
		}
		logger.Error("Failed to get role", log.String("id", roleID), log.Error(err))
		return &ErrorInternalServerError
	}

	assignmentCount, err := s.store.GetRoleAssignmentCount(roleID)
	if err != nil {
		logger.Error("Failed to count role assignments", log.String("id", roleID), log.Error(err))
		return &ErrorInternalServerError
	}
	if assignmentCount > 0 {
		return &ErrorRoleInUse
	}

	if err := s.store.DeleteRole(roleID); err != nil {
		logger.Error("Failed to delete role", log.String("id", roleID), log.Error(err))
		return &ErrorInternalServerError
	}

	logger.Debug("Role deleted", log.String("id", roleID))
	return nil
}

// AssignUser assigns a user to a role.
func (s *roleService) AssignUser(roleID, userID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RoleService"))

	if _, svcErr := s.GetRole(roleID); svcErr != nil {
		return svcErr
	}
	if svcErr := s.checkUserExists(userID); svcErr != nil {
		return svcErr
	}

	assigned, err := s.store.IsUserAssigned(userID, roleID)
	if err != nil {
		logger.Error("Failed to check role assignment", log.String("roleId", roleID), log.Error(err))
		return &ErrorInternalServerError
	}
	if assigned {
		return &ErrorUserAlreadyAssigned
	}

	if err := s.store.CreateAssignment(userID, roleID); err != nil {
		logger.Error("Failed to assign user to role", log.String("roleId", roleID), log.Error(err))
		return &ErrorInternalServerError
	}

	logger.Debug("User assigned to role", log.String("roleId", roleID), log.String("userId", userID))
	return nil
}

// UnassignUser removes a user from a role.
func (s *roleService) UnassignUser(roleID, userID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RoleService"))

	if _, svcErr := s.GetRole(roleID); svcErr != nil {
		return svcErr
	}
	if strings.TrimSpace(userID) == "" {
		return &ErrorUserNotFoundForAssignment
	}

	assigned, err := s.store.IsUserAssigned(userID, roleID)
	if err != nil {
		logger.Error("Failed to check role assignment", log.String("roleId", roleID), log.Error(err))
		return &ErrorInternalServerError
	}
	if !assigned {
		return &ErrorUserNotAssigned
	}

	if err := s.store.DeleteAssignment(userID, roleID); err != nil {
		logger.Error("Failed to remove user from role", log.String("roleId", roleID), log.Error(err))
		return &ErrorInternalServerError
	}

	logger.Debug("User removed from role", log.String("roleId", roleID), log.String("userId", userID))
	return nil
}

// GetRoleUsers lists the users assigned to a role.
func (s *roleService) GetRoleUsers(roleID string) (*RoleUsersResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RoleService"))

	if _, svcErr := s.GetRole(roleID); svcErr != nil {
		return nil, svcErr
	}

	userIDs, err := s.store.GetRoleUsers(roleID)
	if err != nil {
		logger.Error("Failed to list role users", log.String("roleId", roleID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &RoleUsersResponse{
		RoleID:  roleID,
		UserIDs: userIDs,
	}, nil
}

// GetUserRoles lists the roles a user is assigned to.
func (s *roleService) GetUserRoles(userID string) (*UserRolesResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RoleService"))

	if svcErr := s.checkUserExists(userID); svcErr != nil {
		return nil, svcErr
	}

	roles, err := s.store.GetUserRoles(userID)
	if err != nil {
		logger.Error("Failed to list user roles", log.String("userId", userID), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &UserRolesResponse{
		UserID: userID,
		Roles:  roles,
	}, nil
}

// checkSchemeReference verifies that the referenced permission scheme exists.
// An empty scheme id means the role carries no scheme and is always valid.
func (s *roleService) checkSchemeReference(schemeID string) *serviceerror.ServiceError {
	if strings.TrimSpace(schemeID) == "" {
		return nil
	}

	if _, svcErr := s.schemeService.GetPermissionScheme(schemeID); svcErr != nil {
		if svcErr.Type == serviceerror.ClientErrorType {
			return &ErrorSchemeNotFoundForRole
		}
		return &ErrorInternalServerError
	}
	return nil
}

// checkUserExists verifies that the user exists.
func (s *roleService) checkUserExists(userID string) *serviceerror.ServiceError {
	if strings.TrimSpace(userID) == "" {
		return &ErrorUserNotFoundForAssignment
	}

	if _, svcErr := s.userService.GetUser(userID); svcErr != nil {
		if svcErr.Type == serviceerror.ClientErrorType {
			return &ErrorUserNotFoundForAssignment
		}
		return &ErrorInternalServerError
	}
	return nil
}

// validateRole validates a role payload and returns the violations keyed by field.
func validateRole(role *Role) map[string]string {
	violations := make(map[string]string)
	if role == nil {
		violations["role"] = "role payload is required"
		return violations
	}

	if strings.TrimSpace(role.Name) == "" {
		violations["name"] = "name is required"
	} else if !roleNameRegex.MatchString(role.Name) {
		violations["name"] = "name must start with a letter and contain only letters, digits, spaces, hyphens and underscores"
	}
	return violations
}
