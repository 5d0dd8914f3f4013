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
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lattice-hq/lattice/internal/system/utils"
)

type schemeStoreMock struct {
	mock.Mock
}

func (m *schemeStoreMock) CreatePermissionScheme(scheme PermissionScheme) error {
	args := m.Called(scheme)
	return args.Error(0)
}

func (m *schemeStoreMock) GetPermissionSchemeList(limit, offset int) ([]BasicPermissionScheme, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BasicPermissionScheme), args.Error(1)
}

func (m *schemeStoreMock) GetPermissionSchemeCount() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *schemeStoreMock) GetPermissionScheme(schemeID string) (*PermissionScheme, error) {
	args := m.Called(schemeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PermissionScheme), args.Error(1)
}

func (m *schemeStoreMock) GetPermissionSchemeByName(name string) (*PermissionScheme, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PermissionScheme), args.Error(1)
}

func (m *schemeStoreMock) UpdatePermissionScheme(scheme *PermissionScheme) error {
	args := m.Called(scheme)
	return args.Error(0)
}

func (m *schemeStoreMock) DeletePermissionScheme(schemeID string) error {
	args := m.Called(schemeID)
	return args.Error(0)
}

func (m *schemeStoreMock) GetRoleReferenceCount(schemeID string) (int, error) {
	args := m.Called(schemeID)
	return args.Int(0), args.Error(1)
}

type SchemeServiceTestSuite struct {
	suite.Suite
	mockStore *schemeStoreMock
	service   SchemeServiceInterface
}

func TestSchemeServiceSuite(t *testing.T) {
	suite.Run(t, new(SchemeServiceTestSuite))
}

func (suite *SchemeServiceTestSuite) SetupTest() {
	suite.mockStore = new(schemeStoreMock)
	suite.service = &schemeService{store: suite.mockStore}
}

func (suite *SchemeServiceTestSuite) TestCreatePermissionSchemeSuccess() {
	suite.mockStore.On("GetPermissionSchemeByName", "operators").Return(nil, ErrSchemeNotFound)
	suite.mockStore.On("CreatePermissionScheme", mock.AnythingOfType("PermissionScheme")).Return(nil)

	created, svcErr := suite.service.CreatePermissionScheme(&PermissionScheme{
		Name: "operators",
		Rules: []Rule{
			{Resource: "entities/*", Actions: []string{"read"}, Effect: EffectAllow},
		},
	})

	suite.Nil(svcErr)
	if suite.NotNil(created) {
		suite.NotEmpty(created.ID)
	}
}

func (suite *SchemeServiceTestSuite) TestCreatePermissionSchemeValidationFailures() {
	testCases := []struct {
		name         string
		scheme       *PermissionScheme
		violationKey string
	}{
		{
			name:         "EmptyName",
			scheme:       &PermissionScheme{Name: ""},
			violationKey: "name",
		},
		{
			name:         "NameStartingWithDigit",
			scheme:       &PermissionScheme{Name: "1ops"},
			violationKey: "name",
		},
		{
			name: "RuleWithoutResource",
			scheme: &PermissionScheme{
				Name:  "ops",
				Rules: []Rule{{Resource: "", Actions: []string{"read"}, Effect: EffectAllow}},
			},
			violationKey: "rules[0].resource",
		},
		{
			name: "RuleWithoutActions",
			scheme: &PermissionScheme{
				Name:  "ops",
				Rules: []Rule{{Resource: "entities", Actions: []string{}, Effect: EffectAllow}},
			},
			violationKey: "rules[0].actions",
		},
		{
			name: "RuleWithUnknownEffect",
			scheme: &PermissionScheme{
				Name:  "ops",
				Rules: []Rule{{Resource: "entities", Actions: []string{"read"}, Effect: "audit"}},
			},
			violationKey: "rules[0].effect",
		},
		{
			name: "RuleWithInvalidAction",
			scheme: &PermissionScheme{
				Name:  "ops",
				Rules: []Rule{{Resource: "entities", Actions: []string{"Read Things"}, Effect: EffectAllow}},
			},
			violationKey: "rules[0].actions[0]",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			created, svcErr := suite.service.CreatePermissionScheme(tc.scheme)

			suite.Nil(created)
			if suite.NotNil(svcErr) {
				suite.Equal(ErrorInvalidScheme.Code, svcErr.Code)
				suite.Contains(svcErr.Violations, tc.violationKey)
			}
		})
	}
}

func (suite *SchemeServiceTestSuite) TestCreatePermissionSchemeDuplicateName() {
	suite.mockStore.On("GetPermissionSchemeByName", "operators").
		Return(&PermissionScheme{ID: "existing", Name: "operators"}, nil)

	created, svcErr := suite.service.CreatePermissionScheme(&PermissionScheme{Name: "operators"})

	suite.Nil(created)
	if suite.NotNil(svcErr) {
		suite.Equal(ErrorSchemeAlreadyExists.Code, svcErr.Code)
	}
}

func (suite *SchemeServiceTestSuite) TestGetPermissionSchemeNotFound() {
	suite.mockStore.On("GetPermissionScheme", "missing").Return(nil, ErrSchemeNotFound)

	scheme, svcErr := suite.service.GetPermissionScheme("missing")

	suite.Nil(scheme)
	if suite.NotNil(svcErr) {
		suite.Equal(ErrorSchemeNotFound.Code, svcErr.Code)
	}
}

func (suite *SchemeServiceTestSuite) TestGetPermissionSchemeEmptyID() {
	scheme, svcErr := suite.service.GetPermissionScheme("  ")

	suite.Nil(scheme)
	if suite.NotNil(svcErr) {
		suite.Equal(ErrorInvalidSchemeID.Code, svcErr.Code)
	}
}

func (suite *SchemeServiceTestSuite) TestGetPermissionSchemeList() {
	suite.mockStore.On("GetPermissionSchemeCount").Return(42, nil)
	suite.mockStore.On("GetPermissionSchemeList", 30, 30).Return([]BasicPermissionScheme{
		{ID: "scheme-1", Name: "operators", RuleCount: 3},
	}, nil)

	listResponse, svcErr := suite.service.GetPermissionSchemeList(utils.PageParams{Page: 2, PerPage: 30})

	suite.Nil(svcErr)
	if suite.NotNil(listResponse) {
		suite.Equal(42, listResponse.Total)
		suite.Len(listResponse.Schemes, 1)
	}
}

func (suite *SchemeServiceTestSuite) TestUpdatePermissionSchemeRenameConflict() {
	suite.mockStore.On("GetPermissionSchemeByName", "admins").
		Return(&PermissionScheme{ID: "other", Name: "admins"}, nil)

	updated, svcErr := suite.service.UpdatePermissionScheme("scheme-1", &PermissionScheme{Name: "admins"})

	suite.Nil(updated)
	if suite.NotNil(svcErr) {
		suite.Equal(ErrorSchemeAlreadyExists.Code, svcErr.Code)
	}
}

func (suite *SchemeServiceTestSuite) TestUpdatePermissionSchemeKeepsOwnName() {
	suite.mockStore.On("GetPermissionSchemeByName", "operators").
		Return(&PermissionScheme{ID: "scheme-1", Name: "operators"}, nil)
	suite.mockStore.On("UpdatePermissionScheme", mock.AnythingOfType("*permission.PermissionScheme")).Return(nil)

	updated, svcErr := suite.service.UpdatePermissionScheme("scheme-1", &PermissionScheme{
		Name:  "operators",
		Rules: []Rule{{Resource: "entities", Actions: []string{"read"}, Effect: EffectAllow}},
	})

	suite.Nil(svcErr)
	if suite.NotNil(updated) {
		suite.Equal("scheme-1", updated.ID)
	}
}

func (suite *SchemeServiceTestSuite) TestDeletePermissionSchemeRefusedWhileReferenced() {
	suite.mockStore.On("GetPermissionScheme", "scheme-1").
		Return(&PermissionScheme{ID: "scheme-1", Name: "operators"}, nil)
	suite.mockStore.On("GetRoleReferenceCount", "scheme-1").Return(2, nil)

	svcErr := suite.service.DeletePermissionScheme("scheme-1")

	if suite.NotNil(svcErr) {
		suite.Equal(ErrorSchemeInUse.Code, svcErr.Code)
	}
	suite.mockStore.AssertNotCalled(suite.T(), "DeletePermissionScheme", "scheme-1")
}

func (suite *SchemeServiceTestSuite) TestDeletePermissionSchemeSuccess() {
	suite.mockStore.On("GetPermissionScheme", "scheme-1").
		Return(&PermissionScheme{ID: "scheme-1", Name: "operators"}, nil)
	suite.mockStore.On("GetRoleReferenceCount", "scheme-1").Return(0, nil)
	suite.mockStore.On("DeletePermissionScheme", "scheme-1").Return(nil)

	svcErr := suite.service.DeletePermissionScheme("scheme-1")

	suite.Nil(svcErr)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *SchemeServiceTestSuite) TestDeletePermissionSchemeStoreFailure() {
	suite.mockStore.On("GetPermissionScheme", "scheme-1").
		Return(&PermissionScheme{ID: "scheme-1", Name: "operators"}, nil)
	suite.mockStore.On("GetRoleReferenceCount", "scheme-1").Return(0, nil)
	suite.mockStore.On("DeletePermissionScheme", "scheme-1").Return(errors.New("connection reset"))

	svcErr := suite.service.DeletePermissionScheme("scheme-1")

	if suite.NotNil(svcErr) {
		suite.Equal(ErrorInternalServerError.Code, svcErr.Code)
	}
}

func (suite *SchemeServiceTestSuite) TestEvaluateAccess() {
	suite.mockStore.On("GetPermissionScheme", "scheme-1").Return(&PermissionScheme{
		ID:   "scheme-1",
		Name: "operators",
		Rules: []Rule{
			{Resource: "entities/*", Actions: []string{"read"}, Effect: EffectAllow},
			{Resource: "entities/orders", Actions: []string{"read"}, Effect: EffectDeny},
		},
	}, nil)

	denied, svcErr := suite.service.EvaluateAccess("scheme-1", "entities/orders", "read")
	suite.Nil(svcErr)
	if suite.NotNil(denied) {
		suite.False(denied.Allowed)
	}

	allowed, svcErr := suite.service.EvaluateAccess("scheme-1", "entities/customers", "read")
	suite.Nil(svcErr)
	if suite.NotNil(allowed) {
		suite.True(allowed.Allowed)
	}
}

func (suite *SchemeServiceTestSuite) TestEvaluateAccessMissingInput() {
	result, svcErr := suite.service.EvaluateAccess("scheme-1", "", "read")

	suite.Nil(result)
	if suite.NotNil(svcErr) {
		suite.Equal(ErrorInvalidEvaluationRequest.Code, svcErr.Code)
	}
}
