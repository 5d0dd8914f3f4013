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

import dbmodel "github.com/lattice-hq/lattice/internal/system/database/model"

var (
	// queryCreateRole is the query to create a role.
	queryCreateRole = dbmodel.DBQuery{
		ID:    "ROQ-ROLE_MGT-01",
		Query: "INSERT INTO LATTICE_ROLE (ROLE_ID, NAME, DESCRIPTION, SCHEME_ID) VALUES ($1, $2, $3, $4)",
	}

	// queryGetRoleList is the query to list roles with their member counts.
	queryGetRoleList = dbmodel.DBQuery{
		ID: "ROQ-ROLE_MGT-02",
		Query: "SELECT R.ROLE_ID, R.NAME, R.DESCRIPTION, R.SCHEME_ID, COUNT(A.USER_ID) AS USER_COUNT " +
			"FROM LATTICE_ROLE R LEFT JOIN USER_ROLE_ASSIGNMENT A ON R.ROLE_ID = A.ROLE_ID " +
			"GROUP BY R.ROLE_ID, R.NAME, R.DESCRIPTION, R.SCHEME_ID ORDER BY R.NAME LIMIT $1 OFFSET $2",
	}

	// queryGetRoleCount is the query to count roles.
	queryGetRoleCount = dbmodel.DBQuery{
		ID:    "ROQ-ROLE_MGT-03",
		Query: "SELECT COUNT(*) AS total FROM LATTICE_ROLE",
	}

	// queryGetRoleByID is the query to get a role by id.
	queryGetRoleByID = dbmodel.DBQuery{
		ID:    "ROQ-ROLE_MGT-04",
		Query: "SELECT ROLE_ID, NAME, DESCRIPTION, SCHEME_ID FROM LATTICE_ROLE WHERE ROLE_ID = $1",
	}

	// queryGetRoleByName is the query to get a role by name.
	queryGetRoleByName = dbmodel.DBQuery{
		ID:    "ROQ-ROLE_MGT-05",
		Query: "SELECT ROLE_ID, NAME, DESCRIPTION, SCHEME_ID FROM LATTICE_ROLE WHERE NAME = $1",
	}

	// queryUpdateRole is the query to update a role.
	queryUpdateRole = dbmodel.DBQuery{
		ID:    "ROQ-ROLE_MGT-06",
		Query: "UPDATE LATTICE_ROLE SET NAME = $2, DESCRIPTION = $3, SCHEME_ID = $4 WHERE ROLE_ID = $1",
	}

	// queryDeleteRole is the query to delete a role.
	queryDeleteRole = dbmodel.DBQuery{
		ID:    "ROQ-ROLE_MGT-07",
		Query: "DELETE FROM LATTICE_ROLE WHERE ROLE_ID = $1",
	}

	// queryDeleteRoleAssignments is the query to delete all assignments of a role.
	queryDeleteRoleAssignments = dbmodel.DBQuery{
		ID:    "ROQ-ROLE_MGT-08",
		Query: "DELETE FROM USER_ROLE_ASSIGNMENT WHERE ROLE_ID = $1",
	}

	// queryCreateAssignment is the query to assign a user to a role.
	queryCreateAssignment = dbmodel.DBQuery{
		ID:    "ROQ-ROLE_MGT-09",
		Query: "INSERT INTO USER_ROLE_ASSIGNMENT (USER_ID, ROLE_ID) VALUES ($1, $2)",
	}

	// queryDeleteAssignment is the query to remove a user from a role.
	queryDeleteAssignment = dbmodel.DBQuery{
		ID:    "ROQ-ROLE_MGT-10",
		Query: "DELETE FROM USER_ROLE_ASSIGNMENT WHERE USER_ID = $1 AND ROLE_ID = $2",
	}

	// queryGetAssignment is the query to check whether a user holds a role.
	queryGetAssignment = dbmodel.DBQuery{
		ID:    "ROQ-ROLE_MGT-11",
		Query: "SELECT COUNT(*) AS total FROM USER_ROLE_ASSIGNMENT WHERE USER_ID = $1 AND ROLE_ID = $2",
	}

	// queryGetRoleUsers is the query to list the users assigned to a role.
	queryGetRoleUsers = dbmodel.DBQuery{
		ID:    "ROQ-ROLE_MGT-12",
		Query: "SELECT USER_ID FROM USER_ROLE_ASSIGNMENT WHERE ROLE_ID = $1 ORDER BY USER_ID",
	}

	// queryGetUserRoles is the query to list the roles a user is assigned to.
	queryGetUserRoles = dbmodel.DBQuery{
		ID: "ROQ-ROLE_MGT-13",
		Query: "SELECT R.ROLE_ID, R.NAME, R.DESCRIPTION, R.SCHEME_ID FROM LATTICE_ROLE R " +
			"INNER JOIN USER_ROLE_ASSIGNMENT A ON R.ROLE_ID = A.ROLE_ID WHERE A.USER_ID = $1 ORDER BY R.NAME",
	}

	// queryGetRoleAssignmentCount is the query to count the users assigned to a role.
	queryGetRoleAssignmentCount = dbmodel.DBQuery{
		ID:    "ROQ-ROLE_MGT-14",
		Query: "SELECT COUNT(*) AS total FROM USER_ROLE_ASSIGNMENT WHERE ROLE_ID = $1",
	}
)
