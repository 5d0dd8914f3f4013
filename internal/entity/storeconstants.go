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

package entity

import (
	"fmt"

	"github.com/lattice-hq/lattice/internal/system/database/model"
)

var (
	// queryCreateEntityRecord is the query to create a new entity record.
	queryCreateEntityRecord = model.DBQuery{
		ID: "ERQ-ENT_MGT-01",
		Query: "INSERT INTO ENTITY_RECORD (RECORD_ID, DEFINITION_ID, ATTRIBUTES, CREATED_AT, UPDATED_AT) " +
			"VALUES ($1, $2, $3, $4, $5)",
	}
	// queryGetEntityRecordByID is the query to get an entity record by ID.
	queryGetEntityRecordByID = model.DBQuery{
		ID: "ERQ-ENT_MGT-02",
		Query: "SELECT RECORD_ID, DEFINITION_ID, ATTRIBUTES, CREATED_AT, UPDATED_AT FROM ENTITY_RECORD " +
			"WHERE DEFINITION_ID = $1 AND RECORD_ID = $2",
	}
	// queryUpdateEntityRecordByID is the query to update an entity record by ID.
	queryUpdateEntityRecordByID = model.DBQuery{
		ID:    "ERQ-ENT_MGT-03",
		Query: "UPDATE ENTITY_RECORD SET ATTRIBUTES = $3, UPDATED_AT = $4 WHERE DEFINITION_ID = $1 AND RECORD_ID = $2",
	}
	// queryDeleteEntityRecordByID is the query to delete an entity record by ID.
	queryDeleteEntityRecordByID = model.DBQuery{
		ID:    "ERQ-ENT_MGT-04",
		Query: "DELETE FROM ENTITY_RECORD WHERE DEFINITION_ID = $1 AND RECORD_ID = $2",
	}
)

// attributeExpr returns the SQL expression extracting an attribute value as
// text for each supported driver. The field name is validated against
// filterFieldRegex before it reaches this point.
func attributeExpr(field string) (postgres, sqlite string) {
	postgres = fmt.Sprintf("(ATTRIBUTES::jsonb ->> '%s')", field)
	sqlite = fmt.Sprintf("json_extract(ATTRIBUTES, '$.%s')", field)
	return postgres, sqlite
}

// filterCondition returns the SQL predicate for the filter, phrased against
// the $2 placeholder, for each supported driver.
func filterCondition(filter *Filter) (postgres, sqlite string) {
	pgExpr, liteExpr := attributeExpr(filter.Field)

	switch filter.Operator {
	case OperatorEquals:
		return pgExpr + " = $2", liteExpr + " = $2"
	case OperatorNotEquals:
		return pgExpr + " <> $2", liteExpr + " <> $2"
	case OperatorGreaterThan:
		return "(" + pgExpr + ")::numeric > ($2)::numeric",
			"CAST(" + liteExpr + " AS NUMERIC) > CAST($2 AS NUMERIC)"
	case OperatorLessThan:
		return "(" + pgExpr + ")::numeric < ($2)::numeric",
			"CAST(" + liteExpr + " AS NUMERIC) < CAST($2 AS NUMERIC)"
	case OperatorContains:
		return pgExpr + " LIKE '%' || $2 || '%'", liteExpr + " LIKE '%' || $2 || '%'"
	default:
		return pgExpr + " = $2", liteExpr + " = $2"
	}
}

// buildRecordListQuery builds the paged record list query, optionally narrowed
// by a filter predicate.
func buildRecordListQuery(filter *Filter) model.DBQuery {
	const baseSelect = "SELECT RECORD_ID, DEFINITION_ID, ATTRIBUTES, CREATED_AT, UPDATED_AT FROM ENTITY_RECORD " +
		"WHERE DEFINITION_ID = $1"

	if filter == nil {
		return model.DBQuery{
			ID:    "ERQ-ENT_MGT-05",
			Query: baseSelect + " ORDER BY CREATED_AT LIMIT $2 OFFSET $3",
		}
	}

	pgCond, liteCond := filterCondition(filter)
	return model.DBQuery{
		ID:            "ERQ-ENT_MGT-06",
		PostgresQuery: baseSelect + " AND " + pgCond + " ORDER BY CREATED_AT LIMIT $3 OFFSET $4",
		SQLiteQuery:   baseSelect + " AND " + liteCond + " ORDER BY CREATED_AT LIMIT $3 OFFSET $4",
	}
}

// buildRecordCountQuery builds the record count query, optionally narrowed by
// a filter predicate.
func buildRecordCountQuery(filter *Filter) model.DBQuery {
	const baseCount = "SELECT COUNT(*) AS TOTAL FROM ENTITY_RECORD WHERE DEFINITION_ID = $1"

	if filter == nil {
		return model.DBQuery{
			ID:    "ERQ-ENT_MGT-07",
			Query: baseCount,
		}
	}

	pgCond, liteCond := filterCondition(filter)
	return model.DBQuery{
		ID:            "ERQ-ENT_MGT-08",
		PostgresQuery: baseCount + " AND " + pgCond,
		SQLiteQuery:   baseCount + " AND " + liteCond,
	}
}

// buildAttributeExistsQuery builds the query checking whether another record
// of the definition already holds the given attribute value.
func buildAttributeExistsQuery(field string) model.DBQuery {
	pgExpr, liteExpr := attributeExpr(field)
	return model.DBQuery{
		ID: "ERQ-ENT_MGT-09",
		PostgresQuery: "SELECT COUNT(*) AS TOTAL FROM ENTITY_RECORD WHERE DEFINITION_ID = $1 AND " +
			pgExpr + " = $2 AND RECORD_ID <> $3",
		SQLiteQuery: "SELECT COUNT(*) AS TOTAL FROM ENTITY_RECORD WHERE DEFINITION_ID = $1 AND " +
			liteExpr + " = $2 AND RECORD_ID <> $3",
	}
}
