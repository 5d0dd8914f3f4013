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

import "github.com/lattice-hq/lattice/internal/system/database/model"

var (
	// queryCreateEntityDefinition is the query to create a new entity definition.
	queryCreateEntityDefinition = model.DBQuery{
		ID:    "EDQ-ENTDEF_MGT-01",
		Query: "INSERT INTO ENTITY_DEFINITION (DEFINITION_ID, NAME, DESCRIPTION, FIELDS) VALUES ($1, $2, $3, $4)",
	}
	// queryGetEntityDefinitionByID is the query to get an entity definition by ID.
	queryGetEntityDefinitionByID = model.DBQuery{
		ID:    "EDQ-ENTDEF_MGT-02",
		Query: "SELECT DEFINITION_ID, NAME, DESCRIPTION, FIELDS FROM ENTITY_DEFINITION WHERE DEFINITION_ID = $1",
	}
	// queryGetEntityDefinitionByName is the query to get an entity definition by name.
	queryGetEntityDefinitionByName = model.DBQuery{
		ID:    "EDQ-ENTDEF_MGT-03",
		Query: "SELECT DEFINITION_ID, NAME, DESCRIPTION, FIELDS FROM ENTITY_DEFINITION WHERE NAME = $1",
	}
	// queryGetEntityDefinitionList is the query to get a page of entity definitions.
	queryGetEntityDefinitionList = model.DBQuery{
		ID:    "EDQ-ENTDEF_MGT-04",
		Query: "SELECT DEFINITION_ID, NAME, DESCRIPTION, FIELDS FROM ENTITY_DEFINITION ORDER BY NAME LIMIT $1 OFFSET $2",
	}
	// queryGetEntityDefinitionCount is the query to count entity definitions.
	queryGetEntityDefinitionCount = model.DBQuery{
		ID:    "EDQ-ENTDEF_MGT-05",
		Query: "SELECT COUNT(*) AS TOTAL FROM ENTITY_DEFINITION",
	}
	// queryUpdateEntityDefinitionByID is the query to update an entity definition by ID.
	queryUpdateEntityDefinitionByID = model.DBQuery{
		ID:    "EDQ-ENTDEF_MGT-06",
		Query: "UPDATE ENTITY_DEFINITION SET NAME = $2, DESCRIPTION = $3, FIELDS = $4 WHERE DEFINITION_ID = $1",
	}
	// queryDeleteEntityDefinitionByID is the query to delete an entity definition by ID.
	queryDeleteEntityDefinitionByID = model.DBQuery{
		ID:    "EDQ-ENTDEF_MGT-07",
		Query: "DELETE FROM ENTITY_DEFINITION WHERE DEFINITION_ID = $1",
	}
	// queryCountRecordsByDefinition counts the records stored for a definition in the runtime database.
	queryCountRecordsByDefinition = model.DBQuery{
		ID:    "EDQ-ENTDEF_MGT-08",
		Query: "SELECT COUNT(*) AS TOTAL FROM ENTITY_RECORD WHERE DEFINITION_ID = $1",
	}
)
