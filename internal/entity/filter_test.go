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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ParseFilterTestSuite struct {
	suite.Suite
}

func TestParseFilterSuite(t *testing.T) {
	suite.Run(t, new(ParseFilterTestSuite))
}

func (suite *ParseFilterTestSuite) TestValidExpressions() {
	testCases := []struct {
		name     string
		expr     string
		expected Filter
	}{
		{
			name:     "Equals",
			expr:     "status:eq:active",
			expected: Filter{Field: "status", Operator: OperatorEquals, Value: "active"},
		},
		{
			name:     "GreaterThan",
			expr:     "age:gt:18",
			expected: Filter{Field: "age", Operator: OperatorGreaterThan, Value: "18"},
		},
		{
			name:     "ValueWithColons",
			expr:     "joined:lt:2024-06-01T12:00:00Z",
			expected: Filter{Field: "joined", Operator: OperatorLessThan, Value: "2024-06-01T12:00:00Z"},
		},
		{
			name:     "Contains",
			expr:     "email:contains:@example.com",
			expected: Filter{Field: "email", Operator: OperatorContains, Value: "@example.com"},
		},
	}

	for _, testCase := range testCases {
		suite.T().Run(testCase.name, func(t *testing.T) {
			filter, err := ParseFilter(testCase.expr)
			assert.NoError(t, err)
			if assert.NotNil(t, filter) {
				assert.Equal(t, testCase.expected, *filter)
			}
		})
	}
}

func (suite *ParseFilterTestSuite) TestEmptyExpressionYieldsNilFilter() {
	filter, err := ParseFilter("")

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), filter)
}

func (suite *ParseFilterTestSuite) TestInvalidExpressions() {
	testCases := []struct {
		name string
		expr string
	}{
		{name: "MissingParts", expr: "status:eq"},
		{name: "UnknownOperator", expr: "status:like:active"},
		{name: "BadFieldName", expr: "Status Name:eq:active"},
		{name: "SQLishField", expr: "a' OR '1'='1:eq:x"},
	}

	for _, testCase := range testCases {
		suite.T().Run(testCase.name, func(t *testing.T) {
			filter, err := ParseFilter(testCase.expr)
			assert.ErrorIs(t, err, ErrInvalidFilter)
			assert.Nil(t, filter)
		})
	}
}
