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

import "strings"

// Evaluate decides whether the scheme grants the action on the resource.
// A matching deny rule always overrides matching allow rules. When no rule
// matches, access is refused.
func Evaluate(scheme *PermissionScheme, resource, action string) bool {
	if scheme == nil {
		return false
	}

	allowed := false
	for _, rule := range scheme.Rules {
		if !matchResource(rule.Resource, resource) || !matchAction(rule.Actions, action) {
			continue
		}
		if rule.Effect == EffectDeny {
			return false
		}
		if rule.Effect == EffectAllow {
			allowed = true
		}
	}
	return allowed
}

// matchResource matches a rule resource pattern against a concrete resource.
// A pattern ending in "*" matches any resource sharing the preceding prefix.
func matchResource(pattern, resource string) bool {
	if pattern == "*" {
		return true
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(resource, strings.TrimSuffix(pattern, "*"))
	}
	return pattern == resource
}

// matchAction matches a rule action list against a concrete action.
func matchAction(actions []string, action string) bool {
	for _, candidate := range actions {
		if candidate == "*" || candidate == action {
			return true
		}
	}
	return false
}
