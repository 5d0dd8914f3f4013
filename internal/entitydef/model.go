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

// FieldDef describes one field of an entity definition.
type FieldDef struct {
	Name     string    `json:"name"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Unique   bool      `json:"unique"`
	Default  any       `json:"default,omitempty"`
}

// EntityDefinition describes a user-defined dynamic entity schema.
type EntityDefinition struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Fields      []FieldDef `json:"fields"`
}

// BasicEntityDefinition holds the summary attributes returned in list responses.
type BasicEntityDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	FieldCount  int    `json:"field_count"`
}

// EntityDefinitionListResponse is the paginated list of entity definitions.
type EntityDefinitionListResponse struct {
	Total       int                     `json:"total"`
	Definitions []BasicEntityDefinition `json:"definitions"`
}

// entityDefRequest is the create/update request payload.
type entityDefRequest struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Fields      []FieldDef `json:"fields"`
}
