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

package client

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/lattice-hq/lattice/internal/system/database/model"
)

type DBClientTestSuite struct {
	suite.Suite
	mockDB   *sql.DB
	mock     sqlmock.Sqlmock
	dbClient DBClientInterface
}

func TestDBClientSuite(t *testing.T) {
	suite.Run(t, new(DBClientTestSuite))
}

func (suite *DBClientTestSuite) SetupTest() {
	var err error
	suite.mockDB, suite.mock, err = sqlmock.New()
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}

	db := model.NewDB(suite.mockDB)
	suite.dbClient = NewDBClient(db, "mock")
}

func (suite *DBClientTestSuite) TearDownTest() {
	if suite.mock != nil {
		if err := suite.mock.ExpectationsWereMet(); err != nil {
			suite.T().Fatalf("There were unfulfilled expectations: %v", err)
		}
	}
}

func (suite *DBClientTestSuite) TestQueryLowercasesColumnNames() {
	testQuery := model.DBQuery{
		ID:    "test_query_columns",
		Query: "SELECT DEFINITION_ID, NAME FROM ENTITY_DEFINITION WHERE DEFINITION_ID = ?",
	}
	args := []interface{}{"def-1"}
	mockArgs := []driver.Value{"def-1"}

	rows := sqlmock.NewRows([]string{"DEFINITION_ID", "NAME"}).
		AddRow("def-1", "orders")
	suite.mock.ExpectQuery("SELECT DEFINITION_ID, NAME FROM ENTITY_DEFINITION WHERE DEFINITION_ID = ?").
		WithArgs(mockArgs...).
		WillReturnRows(rows)

	results, err := suite.dbClient.Query(testQuery, args...)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 1)
	assert.Equal(suite.T(), "def-1", results[0]["definition_id"])
	assert.Equal(suite.T(), "orders", results[0]["name"])
}

func (suite *DBClientTestSuite) TestQueryMultipleRows() {
	testQuery := model.DBQuery{
		ID:    "test_query_multiple",
		Query: "SELECT WORKFLOW_ID, NAME FROM WORKFLOW ORDER BY NAME",
	}

	rows := sqlmock.NewRows([]string{"workflow_id", "name"}).
		AddRow("wf-1", "order import").
		AddRow("wf-2", "user export")
	suite.mock.ExpectQuery("SELECT WORKFLOW_ID, NAME FROM WORKFLOW ORDER BY NAME").
		WillReturnRows(rows)

	results, err := suite.dbClient.Query(testQuery)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 2)
	assert.Equal(suite.T(), "order import", results[0]["name"])
	assert.Equal(suite.T(), "user export", results[1]["name"])
}

func (suite *DBClientTestSuite) TestQueryEmptyResults() {
	testQuery := model.DBQuery{
		ID:    "test_query_empty",
		Query: "SELECT ROLE_ID, NAME FROM LATTICE_ROLE WHERE ROLE_ID = ?",
	}
	mockArgs := []driver.Value{"missing"}

	rows := sqlmock.NewRows([]string{"role_id", "name"})
	suite.mock.ExpectQuery("SELECT ROLE_ID, NAME FROM LATTICE_ROLE WHERE ROLE_ID = ?").
		WithArgs(mockArgs...).
		WillReturnRows(rows)

	results, err := suite.dbClient.Query(testQuery, "missing")

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), results)
}

func (suite *DBClientTestSuite) TestQueryDatabaseError() {
	testQuery := model.DBQuery{
		ID:    "test_query_error",
		Query: "SELECT KEY_ID FROM MISSING_TABLE",
	}

	expectedErr := errors.New("table not found")
	suite.mock.ExpectQuery("SELECT KEY_ID FROM MISSING_TABLE").
		WillReturnError(expectedErr)

	results, err := suite.dbClient.Query(testQuery)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), expectedErr, err)
	assert.Nil(suite.T(), results)
}

func (suite *DBClientTestSuite) TestQueryDialectSelection() {
	testQuery := model.DBQuery{
		ID:            "test_query_dialect",
		Query:         "SELECT NAME FROM PERMISSION_SCHEME",
		PostgresQuery: "SELECT NAME FROM PERMISSION_SCHEME LIMIT $1",
		SQLiteQuery:   "SELECT NAME FROM PERMISSION_SCHEME LIMIT ?",
	}

	db := model.NewDB(suite.mockDB)
	postgresClient := NewDBClient(db, "postgres")

	rows := sqlmock.NewRows([]string{"name"}).AddRow("operators")
	suite.mock.ExpectQuery(`SELECT NAME FROM PERMISSION_SCHEME LIMIT \$1`).
		WithArgs(driver.Value(10)).
		WillReturnRows(rows)

	results, err := postgresClient.Query(testQuery, 10)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 1)
}

func (suite *DBClientTestSuite) TestExecuteSuccess() {
	testQuery := model.DBQuery{
		ID:    "test_execute_success",
		Query: "UPDATE API_KEY SET REVOKED = TRUE WHERE KEY_ID = ?",
	}
	mockArgs := []driver.Value{"key-1"}

	suite.mock.ExpectExec("UPDATE API_KEY SET REVOKED = TRUE WHERE KEY_ID = \\?").
		WithArgs(mockArgs...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rowsAffected, err := suite.dbClient.Execute(testQuery, "key-1")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), rowsAffected)
}

func (suite *DBClientTestSuite) TestExecuteZeroRowsAffected() {
	testQuery := model.DBQuery{
		ID:    "test_execute_zero",
		Query: "DELETE FROM WORKFLOW WHERE WORKFLOW_ID = ?",
	}
	mockArgs := []driver.Value{"missing"}

	suite.mock.ExpectExec("DELETE FROM WORKFLOW WHERE WORKFLOW_ID = \\?").
		WithArgs(mockArgs...).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rowsAffected, err := suite.dbClient.Execute(testQuery, "missing")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), rowsAffected)
}

func (suite *DBClientTestSuite) TestExecuteDatabaseError() {
	testQuery := model.DBQuery{
		ID:    "test_execute_error",
		Query: "DELETE FROM MISSING_TABLE WHERE ID = ?",
	}
	mockArgs := []driver.Value{"x"}

	expectedErr := errors.New("table not found")
	suite.mock.ExpectExec("DELETE FROM MISSING_TABLE WHERE ID = \\?").
		WithArgs(mockArgs...).
		WillReturnError(expectedErr)

	rowsAffected, err := suite.dbClient.Execute(testQuery, "x")

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), expectedErr, err)
	assert.Equal(suite.T(), int64(0), rowsAffected)
}

func (suite *DBClientTestSuite) TestExecuteRowsAffectedError() {
	testQuery := model.DBQuery{
		ID:    "test_execute_rows_error",
		Query: "INSERT INTO LATTICE_USER (USER_ID, USERNAME) VALUES (?, ?)",
	}
	mockArgs := []driver.Value{"user-1", "jdoe"}

	result := sqlmock.NewErrorResult(errors.New("rows affected error"))
	suite.mock.ExpectExec(`INSERT INTO LATTICE_USER \(USER_ID, USERNAME\) VALUES \(\?, \?\)`).
		WithArgs(mockArgs...).
		WillReturnResult(result)

	rowsAffected, err := suite.dbClient.Execute(testQuery, "user-1", "jdoe")

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "rows affected error")
	assert.Equal(suite.T(), int64(0), rowsAffected)
}

func (suite *DBClientTestSuite) TestBeginTxSuccess() {
	suite.mock.ExpectBegin()

	tx, err := suite.dbClient.BeginTx()

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), tx)
	assert.Implements(suite.T(), (*model.TxInterface)(nil), tx)
}

func (suite *DBClientTestSuite) TestBeginTxError() {
	expectedErr := errors.New("transaction error")
	suite.mock.ExpectBegin().WillReturnError(expectedErr)

	tx, err := suite.dbClient.BeginTx()

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), expectedErr, err)
	assert.Nil(suite.T(), tx)
}

func (suite *DBClientTestSuite) TestCloseSuccess() {
	suite.mock.ExpectClose()

	err := suite.dbClient.Close()

	assert.NoError(suite.T(), err)
}
