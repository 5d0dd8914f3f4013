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

// Effect states whether a rule grants or refuses access.
type Effect string

const (
	// EffectAllow grants access to the matched resource actions.
	EffectAllow Effect = "allow"
	// EffectDeny refuses access to the matched resource actions.
	EffectDeny Effect = "deny"
)

// Rule grants or refuses a set of actions on a resource. The resource may end
// with a "*" wildcard segment.
type Rule struct {
	Resource string   `json:"resource"`
	Actions  []string `json:"actions"`
	Effect   Effect   `json:"effect"`
}

// PermissionScheme is a named set of rules evaluated with deny-wins semantics.
type PermissionScheme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Rules       []Rule `json:"rules"`
}

// BasicPermissionScheme holds the summary attributes returned in list responses.
type BasicPermissionScheme struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	RuleCount   int    `json:"rule_count"`
}

// PermissionSchemeListResponse is the paginated list of permission schemes.
type PermissionSchemeListResponse struct {
	Total   int                     `json:"total"`
	Schemes []BasicPermissionScheme `json:"schemes"`
}

// schemeRequest is the create/update request payload.
type schemeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Rules       []Rule `json:"rules"`
}

// evaluateRequest is the access evaluation request payload.
type evaluateRequest struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

// EvaluationResult is the outcome of an access evaluation.
type EvaluationResult struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Allowed  bool   `json:"allowed"`
}
