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

import "github.com/lattice-hq/lattice/internal/system/database/model"

var (
	// queryCreateUser is the query to create a new user.
	queryCreateUser = model.DBQuery{
		ID: "USQ-USER_MGT-01",
		Query: "INSERT INTO LATTICE_USER (USER_ID, USERNAME, EMAIL, FIRST_NAME, LAST_NAME, ACTIVE, CREDENTIAL) " +
			"VALUES ($1, $2, $3, $4, $5, $6, $7)",
	}
	// queryGetUserByID is the query to get a user by ID.
	queryGetUserByID = model.DBQuery{
		ID: "USQ-USER_MGT-02",
		Query: "SELECT USER_ID, USERNAME, EMAIL, FIRST_NAME, LAST_NAME, ACTIVE, CREDENTIAL FROM LATTICE_USER " +
			"WHERE USER_ID = $1",
	}
	// queryGetUserByUsername is the query to get a user by username.
	queryGetUserByUsername = model.DBQuery{
		ID: "USQ-USER_MGT-03",
		Query: "SELECT USER_ID, USERNAME, EMAIL, FIRST_NAME, LAST_NAME, ACTIVE, CREDENTIAL FROM LATTICE_USER " +
			"WHERE USERNAME = $1",
	}
	// queryGetUserByEmail is the query to get a user by email.
	queryGetUserByEmail = model.DBQuery{
		ID: "USQ-USER_MGT-04",
		Query: "SELECT USER_ID, USERNAME, EMAIL, FIRST_NAME, LAST_NAME, ACTIVE, CREDENTIAL FROM LATTICE_USER " +
			"WHERE EMAIL = $1",
	}
	// queryGetUserList is the query to get a page of users.
	queryGetUserList = model.DBQuery{
		ID: "USQ-USER_MGT-05",
		Query: "SELECT USER_ID, USERNAME, EMAIL, ACTIVE FROM LATTICE_USER " +
			"ORDER BY USERNAME LIMIT $1 OFFSET $2",
	}
	// queryGetUserCount is the query to count users.
	queryGetUserCount = model.DBQuery{
		ID:    "USQ-USER_MGT-06",
		Query: "SELECT COUNT(*) AS TOTAL FROM LATTICE_USER",
	}
	// queryUpdateUserByID is the query to update a user by ID.
	queryUpdateUserByID = model.DBQuery{
		ID: "USQ-USER_MGT-07",
		Query: "UPDATE LATTICE_USER SET USERNAME = $2, EMAIL = $3, FIRST_NAME = $4, LAST_NAME = $5, ACTIVE = $6 " +
			"WHERE USER_ID = $1",
	}
	// queryUpdateUserCredential is the query to replace a user's credential.
	queryUpdateUserCredential = model.DBQuery{
		ID:    "USQ-USER_MGT-08",
		Query: "UPDATE LATTICE_USER SET CREDENTIAL = $2 WHERE USER_ID = $1",
	}
	// queryDeleteUserByID is the query to delete a user by ID.
	queryDeleteUserByID = model.DBQuery{
		ID:    "USQ-USER_MGT-09",
		Query: "DELETE FROM LATTICE_USER WHERE USER_ID = $1",
	}
)
