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
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lattice-hq/lattice/internal/system/utils"
)

type entityDefStoreMock struct {
	mock.Mock
}

func (m *entityDefStoreMock) CreateEntityDefinition(def EntityDefinition) error {
	args := m.Called(def)
	return args.Error(0)
}

func (m *entityDefStoreMock) GetEntityDefinitionList(limit, offset int) ([]BasicEntityDefinition, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BasicEntityDefinition), args.Error(1)
}

func (m *entityDefStoreMock) GetEntityDefinitionCount() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *entityDefStoreMock) GetEntityDefinition(defID string) (*EntityDefinition, error) {
	args := m.Called(defID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*EntityDefinition), args.Error(1)
}

func (m *entityDefStoreMock) GetEntityDefinitionByName(name string) (*EntityDefinition, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*EntityDefinition), args.Error(1)
}

func (m *entityDefStoreMock) UpdateEntityDefinition(def *EntityDefinition) error {
	args := m.Called(def)
	return args.Error(0)
}

func (m *entityDefStoreMock) DeleteEntityDefinition(defID string) error {
	args := m.Called(defID)
	return args.Error(0)
}

func (m *entityDefStoreMock) GetRecordCount(defID string) (int, error) {
	args := m.Called(defID)
	return args.Int(0), args.Error(1)
}

type EntityDefServiceTestSuite struct {
	suite.Suite
	mockStore *entityDefStoreMock
	service   EntityDefServiceInterface
}

func TestEntityDefServiceSuite(t *testing.T) {
	suite.Run(t, new(EntityDefServiceTestSuite))
}

func (suite *EntityDefServiceTestSuite) SetupTest() {
	suite.mockStore = new(entityDefStoreMock)
	suite.service = &entityDefService{store: suite.mockStore}
}

func validDefinition() *EntityDefinition {
	return &EntityDefinition{
		Name: "customer",
		Fields: []FieldDef{
			{Name: "email", Type: FieldTypeString, Required: true, Unique: true},
			{Name: "age", Type: FieldTypeNumber},
		},
	}
}

func (suite *EntityDefServiceTestSuite) TestCreateSuccess() {
	suite.mockStore.On("GetEntityDefinitionByName", "customer").
		Return(nil, ErrEntityDefinitionNotFound)
	suite.mockStore.On("CreateEntityDefinition", mock.Anything).Return(nil)

	created, svcErr := suite.service.CreateEntityDefinition(validDefinition())

	suite.Nil(svcErr)
	suite.NotNil(created)
	suite.NotEmpty(created.ID)
	suite.Equal("customer", created.Name)
}

func (suite *EntityDefServiceTestSuite) TestCreateValidationViolations() {
	def := &EntityDefinition{
		Name: "Customer",
		Fields: []FieldDef{
			{Name: "email", Type: "text"},
			{Name: "email", Type: FieldTypeString},
		},
	}

	created, svcErr := suite.service.CreateEntityDefinition(def)

	suite.Nil(created)
	if suite.NotNil(svcErr) {
		suite.Equal(ErrorInvalidEntityDefinition.Code, svcErr.Code)
		suite.Contains(svcErr.Violations, "name")
		suite.Contains(svcErr.Violations, "fields[0].type")
		suite.Contains(svcErr.Violations, "fields[1].name")
	}
}

func (suite *EntityDefServiceTestSuite) TestCreateDuplicateName() {
	suite.mockStore.On("GetEntityDefinitionByName", "customer").
		Return(&EntityDefinition{ID: "existing"}, nil)

	created, svcErr := suite.service.CreateEntityDefinition(validDefinition())

	suite.Nil(created)
	if suite.NotNil(svcErr) {
		suite.Equal(ErrorEntityDefinitionAlreadyExists.Code, svcErr.Code)
	}
}

func (suite *EntityDefServiceTestSuite) TestGetNotFound() {
	suite.mockStore.On("GetEntityDefinition", "missing").
		Return(nil, ErrEntityDefinitionNotFound)

	def, svcErr := suite.service.GetEntityDefinition("missing")

	suite.Nil(def)
	if suite.NotNil(svcErr) {
		suite.Equal(ErrorEntityDefinitionNotFound.Code, svcErr.Code)
	}
}

func (suite *EntityDefServiceTestSuite) TestGetEmptyID() {
	def, svcErr := suite.service.GetEntityDefinition("  ")

	suite.Nil(def)
	if suite.NotNil(svcErr) {
		suite.Equal(ErrorInvalidEntityDefinitionID.Code, svcErr.Code)
	}
}

func (suite *EntityDefServiceTestSuite) TestListSuccess() {
	suite.mockStore.On("GetEntityDefinitionCount").Return(42, nil)
	suite.mockStore.On("GetEntityDefinitionList", 30, 30).
		Return([]BasicEntityDefinition{{ID: "d1", Name: "customer", FieldCount: 2}}, nil)

	listResponse, svcErr := suite.service.GetEntityDefinitionList(utils.PageParams{Page: 2, PerPage: 30})

	suite.Nil(svcErr)
	if suite.NotNil(listResponse) {
		suite.Equal(42, listResponse.Total)
		suite.Len(listResponse.Definitions, 1)
	}
}

func (suite *EntityDefServiceTestSuite) TestUpdateRenameToTakenName() {
	suite.mockStore.On("GetEntityDefinitionByName", "customer").
		Return(&EntityDefinition{ID: "other"}, nil)

	updated, svcErr := suite.service.UpdateEntityDefinition("def1", validDefinition())

	suite.Nil(updated)
	if suite.NotNil(svcErr) {
		suite.Equal(ErrorEntityDefinitionAlreadyExists.Code, svcErr.Code)
	}
}

func (suite *EntityDefServiceTestSuite) TestUpdateKeepingOwnName() {
	suite.mockStore.On("GetEntityDefinitionByName", "customer").
		Return(&EntityDefinition{ID: "def1"}, nil)
	suite.mockStore.On("UpdateEntityDefinition", mock.Anything).Return(nil)

	updated, svcErr := suite.service.UpdateEntityDefinition("def1", validDefinition())

	suite.Nil(svcErr)
	if suite.NotNil(updated) {
		suite.Equal("def1", updated.ID)
	}
}

func (suite *EntityDefServiceTestSuite) TestDeleteRefusedWhileRecordsExist() {
	suite.mockStore.On("GetEntityDefinition", "def1").Return(validDefinition(), nil)
	suite.mockStore.On("GetRecordCount", "def1").Return(3, nil)

	svcErr := suite.service.DeleteEntityDefinition("def1")

	if suite.NotNil(svcErr) {
		suite.Equal(ErrorEntityDefinitionInUse.Code, svcErr.Code)
	}
	suite.mockStore.AssertNotCalled(suite.T(), "DeleteEntityDefinition", "def1")
}

func (suite *EntityDefServiceTestSuite) TestDeleteSuccess() {
	suite.mockStore.On("GetEntityDefinition", "def1").Return(validDefinition(), nil)
	suite.mockStore.On("GetRecordCount", "def1").Return(0, nil)
	suite.mockStore.On("DeleteEntityDefinition", "def1").Return(nil)

	svcErr := suite.service.DeleteEntityDefinition("def1")

	suite.Nil(svcErr)
	suite.mockStore.AssertCalled(suite.T(), "DeleteEntityDefinition", "def1")
}

func (suite *EntityDefServiceTestSuite) TestDeleteStoreFailure() {
	suite.mockStore.On("GetEntityDefinition", "def1").Return(validDefinition(), nil)
	suite.mockStore.On("GetRecordCount", "def1").Return(0, nil)
	suite.mockStore.On("DeleteEntityDefinition", "def1").Return(errors.New("db down"))

	svcErr := suite.service.DeleteEntityDefinition("def1")

	if suite.NotNil(svcErr) {
		suite.Equal(ErrorInternalServerError.Code, svcErr.Code)
	}
}
