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

package workflow

import dbmodel "github.com/lattice-hq/lattice/internal/system/database/model"

var (
	// queryCreateWorkflow is the query to create a workflow.
	queryCreateWorkflow = dbmodel.DBQuery{
		ID: "WFQ-WFL_MGT-01",
		Query: "INSERT INTO WORKFLOW (WORKFLOW_ID, NAME, DESCRIPTION, STEPS, CREATED_AT, UPDATED_AT) " +
			"VALUES ($1, $2, $3, $4, $5, $6)",
	}

	// queryGetWorkflowList is the query to list workflows with pagination.
	queryGetWorkflowList = dbmodel.DBQuery{
		ID: "WFQ-WFL_MGT-02",
		Query: "SELECT WORKFLOW_ID, NAME, DESCRIPTION, STEPS, CREATED_AT, UPDATED_AT FROM WORKFLOW " +
			"ORDER BY NAME LIMIT $1 OFFSET $2",
	}

	// queryGetWorkflowCount is the query to count workflows.
	queryGetWorkflowCount = dbmodel.DBQuery{
		ID:    "WFQ-WFL_MGT-03",
		Query: "SELECT COUNT(*) AS total FROM WORKFLOW",
	}

	// queryGetWorkflowByID is the query to get a workflow by id.
	queryGetWorkflowByID = dbmodel.DBQuery{
		ID:    "WFQ-WFL_MGT-04",
		Query: "SELECT WORKFLOW_ID, NAME, DESCRIPTION, STEPS, CREATED_AT, UPDATED_AT FROM WORKFLOW WHERE WORKFLOW_ID = $1",
	}

	// queryGetWorkflowByName is the query to get a workflow by name.
	queryGetWorkflowByName = dbmodel.DBQuery{
		ID:    "WFQ-WFL_MGT-05",
		Query: "SELECT WORKFLOW_ID, NAME, DESCRIPTION, STEPS, CREATED_AT, UPDATED_AT FROM WORKFLOW WHERE NAME = $1",
	}

	// queryUpdateWorkflow is the query to update a workflow.
	queryUpdateWorkflow = dbmodel.DBQuery{
		ID:    "WFQ-WFL_MGT-06",
		Query: "UPDATE WORKFLOW SET NAME = $2, DESCRIPTION = $3, STEPS = $4, UPDATED_AT = $5 WHERE WORKFLOW_ID = $1",
	}

	// queryDeleteWorkflow is the query to delete a workflow.
	queryDeleteWorkflow = dbmodel.DBQuery{
		ID:    "WFQ-WFL_MGT-07",
		Query: "DELETE FROM WORKFLOW WHERE WORKFLOW_ID = $1",
	}
)
