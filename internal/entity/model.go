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

import "time"

// EntityRecord is one record of a dynamic entity.
type EntityRecord struct {
	ID         string         `json:"id"`
	Definition string         `json:"definition"`
	Attributes map[string]any `json:"attributes"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// EntityRecordListResponse is the paginated list of entity records.
type EntityRecordListResponse struct {
	Total   int            `json:"total"`
	Records []EntityRecord `json:"records"`
}

// entityRecordRequest is the create/update request payload.
type entityRecordRequest struct {
	Attributes map[string]any `json:"attributes"`
}
