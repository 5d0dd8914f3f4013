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

import dbmodel "github.com/lattice-hq/lattice/internal/system/database/model"

var (
	// queryCreatePermissionScheme is the query to create a permission scheme.
	queryCreatePermissionScheme = dbmodel.DBQuery{
		ID:    "PRQ-PERM_MGT-01",
		Query: "INSERT INTO PERMISSION_SCHEME (SCHEME_ID, NAME, DESCRIPTION, RULES) VALUES ($1, $2, $3, $4)",
	}

	// queryGetPermissionSchemeList is the query to list permission schemes with pagination.
	queryGetPermissionSchemeList = dbmodel.DBQuery{
		ID:    "PRQ-PERM_MGT-02",
		Query: "SELECT SCHEME_ID, NAME, DESCRIPTION, RULES FROM PERMISSION_SCHEME ORDER BY NAME LIMIT $1 OFFSET $2",
	}

	// queryGetPermissionSchemeCount is the query to count permission schemes.
	queryGetPermissionSchemeCount = dbmodel.DBQuery{
		ID:    "PRQ-PERM_MGT-03",
		Query: "SELECT COUNT(*) AS total FROM PERMISSION_SCHEME",
	}

	// queryGetPermissionSchemeByID is the query to get a permission scheme by id.
	queryGetPermissionSchemeByID = dbmodel.DBQuery{
		ID:    "PRQ-PERM_MGT-04",
		Query: "SELECT SCHEME_ID, NAME, DESCRIPTION, RULES FROM PERMISSION_SCHEME WHERE SCHEME_ID = $1",
	}

	// queryGetPermissionSchemeByName is the query to get a permission scheme by name.
	queryGetPermissionSchemeByName = dbmodel.DBQuery{
		ID:    "PRQ-PERM_MGT-05",
		Query: "SELECT SCHEME_ID, NAME, DESCRIPTION, RULES FROM PERMISSION_SCHEME WHERE NAME = $1",
	}

	// queryUpdatePermissionScheme is the query to update a permission scheme.
	queryUpdatePermissionScheme = dbmodel.DBQuery{
		ID:    "PRQ-PERM_MGT-06",
		Query: "UPDATE PERMISSION_SCHEME SET NAME = $2, DESCRIPTION = $3, RULES = $4 WHERE SCHEME_ID = $1",
	}

	// queryDeletePermissionScheme is the query to delete a permission scheme.
	queryDeletePermissionScheme = dbmodel.DBQuery{
		ID:    "PRQ-PERM_MGT-07",
		Query: "DELETE FROM PERMISSION_SCHEME WHERE SCHEME_ID = $1",
	}

	// queryGetRoleReferenceCount is the query to count roles referencing a scheme.
	queryGetRoleReferenceCount = dbmodel.DBQuery{
		ID:    "PRQ-PERM_MGT-08",
		Query: "SELECT COUNT(*) AS total FROM LATTICE_ROLE WHERE SCHEME_ID = $1",
	}
)
