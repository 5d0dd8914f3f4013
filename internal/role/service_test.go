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
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lattice-hq/lattice/internal/permission"
	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
	"github.com/lattice-hq/lattice/internal/system/utils"
	"github.com/lattice-hq/lattice/internal/user"
)

type roleStoreMock struct {
	mock.Mock
}

func (m *roleStoreMock) CreateRole(role Role) error {
	args := m.Called(role)
	return args.Error(0)
}

func (m *roleStoreMock) GetRoleList(limit, offset int) ([]BasicRole, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BasicRole), args.Error(1)
}

func (m *roleStoreMock) GetRoleCount() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *roleStoreMock) GetRole(roleID string) (*Role, error) {
	args := m.Called(roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Role), args.Error(1)
}

func (m *roleStoreMock) GetRoleByName(name string) (*Role, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Role), args.Error(1)
}

func (m *roleStoreMock) UpdateRole(role *Role) error {
	args := m.Called(role)
	return args.Error(0)
}

func (m *roleStoreMock) DeleteRole(roleID string) error {
	args := m.Called(roleID)
	return args.Error(0)
}

func (m *roleStoreMock) CreateAssignment(userID, roleID string) error {
	args := m.Called(userID, roleID)
	return args.Error(0)
}

func (m *roleStoreMock) DeleteAssignment(userID, roleID string) error {
	args := m.Called(userID, roleID)
	return args.Error(0)
}

func (m *roleStoreMock) IsUserAssigned(userID, roleID string) (bool, error) {
	args := m.Called(userID, roleID)
	return args.Bool(0), args.Error(1)
}

func (m *roleStoreMock) GetRoleAssignmentCount(roleID string) (int, error) {
	args := m.Called(roleID)
	return args.Int(0), args.Error(1)
}

func (m *roleStoreMock) GetRoleUsers(roleID string) ([]string, error) {
	args := m.Called(roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *roleStoreMock) GetUserRoles(userID string) ([]Role, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Role), args.Error(1)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) CreateUser(request *user.User, password string) (*user.User, *serviceerror.ServiceError) {
	args := m.Called(request, password)
	return userResult(args)
}

func (m *userServiceMock) GetUserList(params utils.PageParams) (*user.UserListResponse, *serviceerror.ServiceError) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*serviceerror.ServiceError)
	}
	return args.Get(0).(*user.UserListResponse), nil
}

func (m *userServiceMock) GetUser(userID string) (*user.User, *serviceerror.ServiceError) {
	args := m.Called(userID)
	return userResult(args)
}

func (m *userServiceMock) UpdateUser(
	userID string, request *user.User, password string,
) (*user.User, *serviceerror.ServiceError) {
	args := m.Called(userID, request, password)
	return userResult(args)
}

func (m *userServiceMock) DeleteUser(userID string) *serviceerror.ServiceError {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*serviceerror.ServiceError)
}

func (m *userServiceMock) VerifyCredentials(username, password string) (*user.User, *serviceerror.ServiceError) {
	args := m.Called(username, password)
	return userResult(args)
}

func userResult(args mock.Arguments) (*user.User, *serviceerror.ServiceError) {
	var result *user.User
	if args.Get(0) != nil {
		result = args.Get(0).(*user.User)
	}
	if args.Get(1) == nil {
		return result, nil
	}
	return result, args.Get(1).(*serviceerror.ServiceError)
}

type schemeServiceMock struct {
	mock.Mock
}

func (m *schemeServiceMock) CreatePermissionScheme(
	scheme *permission.PermissionScheme,
) (*permission.PermissionScheme, *serviceerror.ServiceError) {
	args := m.Called(scheme)
	return schemeResult(args)
}

func (m *schemeServiceMock) GetPermissionSchemeList(
	params utils.PageParams,
) (*permission.PermissionSchemeListResponse, *serviceerror.ServiceError) {
	args := m.Called(params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*serviceerror.ServiceError)
	}
	return args.Get(0).(*permission.PermissionSchemeListResponse), nil
}

func (m *schemeServiceMock) GetPermissionScheme(
	schemeID string,
) (*permission.PermissionScheme, *serviceerror.ServiceError) {
	args := m.Called(schemeID)
	return schemeResult(args)
}

func (m *schemeServiceMock) UpdatePermissionScheme(
	schemeID string, scheme *permission.PermissionScheme,
) (*permission.PermissionScheme, *serviceerror.ServiceError) {
	args := m.Called(schemeID, scheme)
	return schemeResult(args)
}

func (m *schemeServiceMock) DeletePermissionScheme(schemeID string) *serviceerror.ServiceError {
	args := m.Called(schemeID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*serviceerror.ServiceError)
}

func (m *schemeServiceMock) EvaluateAccess(
	schemeID, resource, action string,
) (*permission.EvaluationResult, *serviceerror.ServiceError) {
	args := m.Called(schemeID, resource, action)
	if args.Get(0) == nil {
		return nil, args.Get(1).(*serviceerror.ServiceError)
	}
	return args.Get(0).(*permission.EvaluationResult), nil
}

func schemeResult(args mock.Arguments) (*permission.PermissionScheme, *serviceerror.ServiceError) {
	var result *permission.PermissionScheme
	if args.Get(0) != nil {
		result = args.Get(0).(*permission.PermissionScheme)
	}
	if args.Get(1) == nil {
		return result, nil
	}
	return result, args.Get(1).(*serviceerror.ServiceError)
}

type RoleServiceTestSuite struct {
	suite.Suite
	mockStore   *roleStoreMock
	mockUsers   *userServiceMock
	mockSchemes *schemeServiceMock
	service     RoleServiceInterface
}

func TestRoleServiceSuite(t *testing.T) {
	suite.Run(t, new(RoleServiceTestSuite))
}

func (suite *RoleServiceTestSuite) SetupTest() {
	suite.mockStore = new(roleStoreMock)
	suite.mockUsers = new(userServiceMock)
	suite.mockSchemes = new(schemeServiceMock)
	suite.service = &roleService{
		store:         suite.mockStore,
		userService:   suite.mockUsers,
		schemeService: suite.mockSchemes,
	}
}

func (suite *RoleServiceTestSuite) TestCreateRoleSuccess() {
	suite.mockStore.On("GetRoleByName", "operators").Return(nil, ErrRoleNotFound)
	suite.mockStore.On("CreateRole", mock.AnythingOfType("Role")).Return(nil)

	created, svcErr := suite.service.CreateRole(&Role{Name: "operators"})

	suite.Nil(svcErr)
	if suite.NotNil(created) {
		suite.NotEmpty(created.ID)
	}
}

func (suite *RoleServiceTestSuite) TestCreateRoleWithSchemeReference() {
	suite.mockSchemes.On("GetPermissionScheme", "scheme-1").
		Return(&permission.PermissionScheme{ID: "scheme-1", Name: "operators"}, nil)
	suite.mockStore.On("GetRoleByName", "operators").Return(nil, ErrRoleNotFound)
	suite.mockStore.On("CreateRole", mock.AnythingOfType("Role")).Return(nil)

	created, svcErr := suite.service.CreateRole(&Role{Name: "operators", SchemeID: "scheme-1"})

	suite.Nil(svcErr)
	if suite.NotNil(created) {
		suite.Equal("scheme-1", created.SchemeID)
	}
}

func (suite *RoleServiceTestSuite) TestCreateRoleUnknownScheme() {
	suite.mockSchemes.On("GetPermissionScheme", "missing").
		Return(nil, &permission.ErrorSchemeNotFound)

	created, svcErr := suite.service.CreateRole(&Role{Name: "operators", SchemeID: "missing"})

	suite.Nil(created)
	if suite.NotNil(svcErr) {
		suite.Equal(ErrorSchemeNotFoundForRole.Code, svcErr.Code)
	}
}

func (suite *RoleServiceTestSuite) TestCreateRoleValidationFailure() {
	created, svcErr := suite.service.CreateRole(&Role{Name: ""})

	suite.Nil(created)
	if suite.NotNil(svcErr) {
		suite.Equal(ErrorInvalidRole.Code, svcErr.Code)
		suite.Contains(svcErr.Violations, "name")
	}
}

func (suite *RoleServiceTestSuite) TestCreateRoleDuplicateName() {
	suite.mockStore.On("GetRoleByName", "operators").Return(&Role{ID: "existing", Name: "operators"}, nil)

	created, svcErr := suite.service.CreateRole(&Role{Name: "operators"})

	suite.Nil(created)
	if suite.NotNil(svcErr) {
		suite.Equal(ErrorRoleAlreadyExists.Code, svcErr.Code)
	}
}

func (suite *RoleServiceTestSuite) TestGetRoleList() {
	suite.mockStore.On("GetRoleCount").Return(5, nil)
	suite.mockStore.On("GetRoleList", 30, 0).Return([]BasicRole{
		{ID: "role-1", Name: "operators", UserCount: 2},
	}, nil)

	listResponse, svcErr := suite.service.GetRoleList(utils.PageParams{Page: 1, PerPage: 30})

	suite.Nil(svcErr)
	if suite.NotNil(listResponse) {
		suite.Equal(5, listResponse.Total)
		suite.Len(listResponse.Roles, 1)
	}
}

func (suite *RoleServiceTestSuite) TestAssignUserSuccess() {
	suite.mockStore.On("GetRole", "role-1").Return(&Role{ID: "role-1", Name: "operators"}, nil)
	suite.mockUsers.On("GetUser", "user-1").Return(&user.User{ID: "user-1", Username: "jdoe"}, nil)
	suite.mockStore.On("IsUserAssigned", "user-1", "role-1").Return(false, nil)
	suite.mockStore.On("CreateAssignment", "user-1", "role-1").Return(nil)

	svcErr := suite.service.AssignUser("role-1", "user-1")

	suite.Nil(svcErr)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *RoleServiceTestSuite) TestAssignUserAlreadyAssigned() {
	suite.mockStore.On("GetRole", "role-1").Return(&Role{ID: "role-1", Name: "operators"}, nil)
	suite.mockUsers.On("GetUser", "user-1").Return(&user.User{ID: "user-1", Username: "jdoe"}, nil)
	suite.mockStore.On("IsUserAssigned", "user-1", "role-1").Return(true, nil)

	svcErr := suite.service.AssignUser("role-1", "user-1")

	if suite.NotNil(svcErr) {
		suite.Equal(ErrorUserAlreadyAssigned.Code, svcErr.Code)
	}
}

func (suite *RoleServiceTestSuite) TestAssignUserUnknownUser() {
	suite.mockStore.On("GetRole", "role-1").Return(&Role{ID: "role-1", Name: "operators"}, nil)
	suite.mockUsers.On("GetUser", "missing").Return(nil, &user.ErrorUserNotFound)

	svcErr := suite.service.AssignUser("role-1", "missing")

	if suite.NotNil(svcErr) {
		suite.Equal(ErrorUserNotFoundForAssignment.Code, svcErr.Code)
	}
}

func (suite *RoleServiceTestSuite) TestAssignUserUnknownRole() {
	suite.mockStore.On("GetRole", "missing").Return(nil, ErrRoleNotFound)

	svcErr := suite.service.AssignUser("missing", "user-1")

	if suite.NotNil(svcErr) {
		suite.Equal(ErrorRoleNotFound.Code, svcErr.Code)
	}
}

func (suite *RoleServiceTestSuite) TestUnassignUserNotAssigned() {
	suite.mockStore.On("GetRole", "role-1").Return(&Role{ID: "role-1", Name: "operators"}, nil)
	suite.mockStore.On("IsUserAssigned", "user-1", "role-1").Return(false, nil)

	svcErr := suite.service.UnassignUser("role-1", "user-1")

	if suite.NotNil(svcErr) {
		suite.Equal(ErrorUserNotAssigned.Code, svcErr.Code)
	}
}

func (suite *RoleServiceTestSuite) TestUnassignUserSuccess() {
	suite.mockStore.On("GetRole", "role-1").Return(&Role{ID: "role-1", Name: "operators"}, nil)
	suite.mockStore.On("IsUserAssigned", "user-1", "role-1").Return(true, nil)
	suite.mockStore.On("DeleteAssignment", "user-1", "role-1").Return(nil)

	svcErr := suite.service.UnassignUser("role-1", "user-1")

	suite.Nil(svcErr)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *RoleServiceTestSuite) TestGetRoleUsers() {
	suite.mockStore.On("GetRole", "role-1").Return(&Role{ID: "role-1", Name: "operators"}, nil)
	suite.mockStore.On("GetRoleUsers", "role-1").Return([]string{"user-1", "user-2"}, nil)

	usersResponse, svcErr := suite.service.GetRoleUsers("role-1")

	suite.Nil(svcErr)
	if suite.NotNil(usersResponse) {
		suite.Equal([]string{"user-1", "user-2"}, usersResponse.UserIDs)
	}
}

func (suite *RoleServiceTestSuite) TestGetUserRoles() {
	suite.mockUsers.On("GetUser", "user-1").Return(&user.User{ID: "user-1", Username: "jdoe"}, nil)
	suite.mockStore.On("GetUserRoles", "user-1").Return([]Role{
		{ID: "role-1", Name: "operators"},
	}, nil)

	rolesResponse, svcErr := suite.service.GetUserRoles("user-1")

	suite.Nil(svcErr)
	if suite.NotNil(rolesResponse) {
		suite.Len(rolesResponse.Roles, 1)
	}
}

func (suite *RoleServiceTestSuite) TestUpdateRoleRenameConflict() {
	suite.mockStore.On("GetRoleByName", "admins").Return(&Role{ID: "other", Name: "admins"}, nil)

	updated, svcErr := suite.service.UpdateRole("role-1", &Role{Name: "admins"})

	suite.Nil(updated)
	if suite.NotNil(svcErr) {
		suite.Equal(ErrorRoleAlreadyExists.Code, svcErr.Code)
	}
}

func (suite *RoleServiceTestSuite) TestDeleteRoleSuccess() {
	suite.mockStore.On("GetRole", "role-1").Return(&Role{ID: "role-1", Name: "operators"}, nil)
	suite.mockStore.On("GetRoleAssignmentCount", "role-1").Return(0, nil)
	suite.mockStore.On("DeleteRole", "role-1").Return(nil)

	svcErr := suite.service.DeleteRole("role-1")

	suite.Nil(svcErr)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *RoleServiceTestSuite) TestDeleteRoleRefusedWhileAssigned() {
	suite.mockStore.On("GetRole", "role-1").Return(&Role{ID: "role-1", Name: "operators"}, nil)
	suite.mockStore.On("GetRoleAssignmentCount", "role-1").Return(2, nil)

	svcErr := suite.service.DeleteRole("role-1")

	if suite.NotNil(svcErr) {
		suite.Equal(ErrorRoleInUse.Code, svcErr.Code)
	}
	suite.mockStore.AssertNotCalled(suite.T(), "DeleteRole", "role-1")
}
