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

package apikey

import dbmodel "github.com/lattice-hq/lattice/internal/system/database/model"

var (
	// queryCreateAPIKey is the query to create an API key record.
	queryCreateAPIKey = dbmodel.DBQuery{
		ID: "AKQ-KEY_MGT-01",
		Query: "INSERT INTO API_KEY (KEY_ID, NAME, PREFIX, CREDENTIAL, CREATED_AT, EXPIRES_AT, REVOKED) " +
			"VALUES ($1, $2, $3, $4, $5, $6, $7)",
	}

	// queryGetAPIKeyList is the query to list API keys with pagination.
	queryGetAPIKeyList = dbmodel.DBQuery{
		ID: "AKQ-KEY_MGT-02",
		Query: "SELECT KEY_ID, NAME, PREFIX, CREDENTIAL, CREATED_AT, EXPIRES_AT, REVOKED FROM API_KEY " +
			"ORDER BY CREATED_AT DESC LIMIT $1 OFFSET $2",
	}

	// queryGetAPIKeyCount is the query to count API keys.
	queryGetAPIKeyCount = dbmodel.DBQuery{
		ID:    "AKQ-KEY_MGT-03",
		Query: "SELECT COUNT(*) AS total FROM API_KEY",
	}

	// queryGetAPIKeyByID is the query to get an API key by id.
	queryGetAPIKeyByID = dbmodel.DBQuery{
		ID:    "AKQ-KEY_MGT-04",
		Query: "SELECT KEY_ID, NAME, PREFIX, CREDENTIAL, CREATED_AT, EXPIRES_AT, REVOKED FROM API_KEY WHERE KEY_ID = $1",
	}

	// queryGetAPIKeyByPrefix is the query to get an API key by its prefix.
	queryGetAPIKeyByPrefix = dbmodel.DBQuery{
		ID:    "AKQ-KEY_MGT-05",
		Query: "SELECT KEY_ID, NAME, PREFIX, CREDENTIAL, CREATED_AT, EXPIRES_AT, REVOKED FROM API_KEY WHERE PREFIX = $1",
	}

	// queryRevokeAPIKey is the query to mark an API key as revoked.
	queryRevokeAPIKey = dbmodel.DBQuery{
		ID:    "AKQ-KEY_MGT-06",
		Query: "UPDATE API_KEY SET REVOKED = TRUE WHERE KEY_ID = $1",
	}

	// queryDeleteAPIKey is the query to delete an API key.
	queryDeleteAPIKey = dbmodel.DBQuery{
		ID:    "AKQ-KEY_MGT-07",
		Query: "DELETE FROM API_KEY WHERE KEY_ID = $1",
	}
)
