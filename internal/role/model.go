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

// Role is a named grant bundle that users can be assigned to. A role may
// reference a permission scheme that decides what its members can do.
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SchemeID    string `json:"scheme_id,omitempty"`
}

// BasicRole holds the summary attributes returned in list responses.
type BasicRole struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SchemeID    string `json:"scheme_id,omitempty"`
	UserCount   int    `json:"user_count"`
}

// RoleListResponse is the paginated list of roles.
type RoleListResponse struct {
	Total int         `json:"total"`
	Roles []BasicRole `json:"roles"`
}

// RoleUsersResponse lists the users assigned to a role.
type RoleUsersResponse struct {
	RoleID  string   `json:"role_id"`
	UserIDs []string `json:"user_ids"`
}

// UserRolesResponse lists the roles a user is assigned to.
type UserRolesResponse struct {
	UserID string `json:"user_id"`
	Roles  []Role `json:"roles"`
}

// roleRequest is the create/update request payload.
type roleRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SchemeID    string `json:"scheme_id,omitempty"`
}

// assignRequest is the user assignment request payload.
type assignRequest struct {
	UserID string `json:"user_id"`
}
