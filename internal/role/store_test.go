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
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/lattice-hq/lattice/internal/system/database/client"
	dbmodel "github.com/lattice-hq/lattice/internal/system/database/model"
)

// fixedDBProvider hands out the same client for every data source name.
type fixedDBProvider struct {
	client client.DBClientInterface
}

func (p *fixedDBProvider) GetDBClient(dbName string) (client.DBClientInterface, error) {
	return p.client, nil
}

type RoleStoreTestSuite struct {
	suite.Suite
	mockDB *sql.DB
	mock   sqlmock.Sqlmock
	store  roleStoreInterface
}

func TestRoleStoreSuite(t *testing.T) {
	suite.Run(t, new(RoleStoreTestSuite))
}

func (suite *RoleStoreTestSuite) SetupTest() {
	var err error
	suite.mockDB, suite.mock, err = sqlmock.New()
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}

	dbClient := client.NewDBClient(dbmodel.NewDB(suite.mockDB), "mock")
	suite.store = &roleStore{
		dbProvider: &fixedDBProvider{client: dbClient},
	}
}

func (suite *RoleStoreTestSuite) TearDownTest() {
	if suite.mock != nil {
		if err := suite.mock.ExpectationsWereMet(); err != nil {
			suite.T().Fatalf("There were unfulfilled expectations: %v", err)
		}
	}
}

func (suite *RoleStoreTestSuite) TestDeleteRoleCommitsSingleTransaction() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`DELETE FROM USER_ROLE_ASSIGNMENT WHERE ROLE_ID = \$1`).
		WithArgs(driver.Value("role-1")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectExec(`DELETE FROM LATTICE_ROLE WHERE ROLE_ID = \$1`).
		WithArgs(driver.Value("role-1")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	err := suite.store.DeleteRole("role-1")

	assert.NoError(suite.T(), err)
}

func (suite *RoleStoreTestSuite) TestDeleteRoleRollsBackWhenRoleDeleteFails() {
	execErr := errors.New("disk I/O error")

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`DELETE FROM USER_ROLE_ASSIGNMENT WHERE ROLE_ID = \$1`).
		WithArgs(driver.Value("role-1")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectExec(`DELETE FROM LATTICE_ROLE WHERE ROLE_ID = \$1`).
		WithArgs(driver.Value("role-1")).
		WillReturnError(execErr)
	suite.mock.ExpectRollback()

	err := suite.store.DeleteRole("role-1")

	assert.Error(suite.T(), err)
	assert.ErrorContains(suite.T(), err, "disk I/O error")
}

func (suite *RoleStoreTestSuite) TestDeleteRoleRollsBackWhenAssignmentDeleteFails() {
	execErr := errors.New("disk I/O error")

	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`DELETE FROM USER_ROLE_ASSIGNMENT WHERE ROLE_ID = \$1`).
		WithArgs(driver.Value("role-1")).
		WillReturnError(execErr)
	suite.mock.ExpectRollback()

	err := suite.store.DeleteRole("role-1")

	assert.Error(suite.T(), err)
}

func (suite *RoleStoreTestSuite) TestGetRoleAssignmentCount() {
	rows := sqlmock.NewRows([]string{"total"}).AddRow(int64(3))
	suite.mock.ExpectQuery(`SELECT COUNT\(\*\) AS total FROM USER_ROLE_ASSIGNMENT WHERE ROLE_ID = \$1`).
		WithArgs(driver.Value("role-1")).
		WillReturnRows(rows)

	count, err := suite.store.GetRoleAssignmentCount("role-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, count)
}
