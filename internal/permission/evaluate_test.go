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

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type EvaluateTestSuite struct {
	suite.Suite
}

func TestEvaluateTestSuite(t *testing.T) {
	suite.Run(t, new(EvaluateTestSuite))
}

func (s *EvaluateTestSuite) TestEvaluate() {
	scheme := &PermissionScheme{
		ID:   "scheme-1",
		Name: "operators",
		Rules: []Rule{
			{Resource: "entities/*", Actions: []string{"read", "list"}, Effect: EffectAllow},
			{Resource: "entities/orders", Actions: []string{"delete"}, Effect: EffectDeny},
			{Resource: "workflows", Actions: []string{"*"}, Effect: EffectAllow},
			{Resource: "*", Actions: []string{"admin"}, Effect: EffectDeny},
		},
	}

	testCases := []struct {
		name     string
		resource string
		action   string
		expected bool
	}{
		{
			name:     "WildcardResourceAllow",
			resource: "entities/orders",
			action:   "read",
			expected: true,
		},
		{
			name:     "ExactResourceDeny",
			resource: "entities/orders",
			action:   "delete",
			expected: false,
		},
		{
			name:     "WildcardActionAllow",
			resource: "workflows",
			action:   "execute",
			expected: true,
		},
		{
			name:     "GlobalDenyAction",
			resource: "workflows",
			action:   "admin",
			expected: false,
		},
		{
			name:     "NoMatchingRuleDefaultsToDeny",
			resource: "users",
			action:   "read",
			expected: false,
		},
		{
			name:     "PrefixMatchOnWildcardResource",
			resource: "entities/customers",
			action:   "list",
			expected: true,
		},
		{
			name:     "ActionNotInList",
			resource: "entities/customers",
			action:   "delete",
			expected: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, Evaluate(scheme, tc.resource, tc.action))
		})
	}
}

func (s *EvaluateTestSuite) TestEvaluateDenyOverridesAllow() {
	scheme := &PermissionScheme{
		Rules: []Rule{
			{Resource: "reports", Actions: []string{"read"}, Effect: EffectAllow},
			{Resource: "reports", Actions: []string{"read"}, Effect: EffectDeny},
		},
	}
	s.False(Evaluate(scheme, "reports", "read"))
}

func (s *EvaluateTestSuite) TestEvaluateDenyWinsRegardlessOfRuleOrder() {
	scheme := &PermissionScheme{
		Rules: []Rule{
			{Resource: "reports", Actions: []string{"read"}, Effect: EffectDeny},
			{Resource: "reports", Actions: []string{"read"}, Effect: EffectAllow},
		},
	}
	s.False(Evaluate(scheme, "reports", "read"))
}

func (s *EvaluateTestSuite) TestEvaluateNilScheme() {
	s.False(Evaluate(nil, "reports", "read"))
}

func (s *EvaluateTestSuite) TestEvaluateEmptyRules() {
	s.False(Evaluate(&PermissionScheme{Rules: []Rule{}}, "reports", "read"))
}
