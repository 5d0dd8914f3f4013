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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ValidateAttributesTestSuite struct {
	suite.Suite
	def *EntityDefinition
}

func TestValidateAttributesSuite(t *testing.T) {
	suite.Run(t, new(ValidateAttributesTestSuite))
}

func (suite *ValidateAttributesTestSuite) SetupTest() {
	suite.def = &EntityDefinition{
		ID:   "def1",
		Name: "customer",
		Fields: []FieldDef{
			{Name: "email", Type: FieldTypeString, Required: true},
			{Name: "age", Type: FieldTypeNumber},
			{Name: "active", Type: FieldTypeBoolean, Default: true},
			{Name: "joined", Type: FieldTypeDate},
			{Name: "preferences", Type: FieldTypeJSON},
		},
	}
}

func (suite *ValidateAttributesTestSuite) TestValidRecord() {
	violations := ValidateAttributes(suite.def, map[string]any{
		"email":       "a@example.com",
		"age":         float64(30),
		"active":      false,
		"joined":      "2024-06-01",
		"preferences": map[string]any{"theme": "dark"},
	})

	assert.Empty(suite.T(), violations)
}

func (suite *ValidateAttributesTestSuite) TestViolations() {
	testCases := []struct {
		name       string
		attributes map[string]any
		field      string
	}{
		{
			name:       "MissingRequired",
			attributes: map[string]any{"age": float64(1)},
			field:      "email",
		},
		{
			name:       "UnknownAttribute",
			attributes: map[string]any{"email": "a@b.c", "nickname": "x"},
			field:      "nickname",
		},
		{
			name:       "WrongStringType",
			attributes: map[string]any{"email": 42},
			field:      "email",
		},
		{
			name:       "WrongNumberType",
			attributes: map[string]any{"email": "a@b.c", "age": "old"},
			field:      "age",
		},
		{
			name:       "WrongBooleanType",
			attributes: map[string]any{"email": "a@b.c", "active": "yes"},
			field:      "active",
		},
		{
			name:       "BadDate",
			attributes: map[string]any{"email": "a@b.c", "joined": "June 1st"},
			field:      "joined",
		},
	}

	for _, testCase := range testCases {
		suite.T().Run(testCase.name, func(t *testing.T) {
			violations := ValidateAttributes(suite.def, testCase.attributes)
			assert.Contains(t, violations, testCase.field)
		})
	}
}

func (suite *ValidateAttributesTestSuite) TestRequiredFieldWithDefaultMayBeAbsent() {
	suite.def.Fields = []FieldDef{
		{Name: "status", Type: FieldTypeString, Required: true, Default: "new"},
	}

	violations := ValidateAttributes(suite.def, map[string]any{})

	assert.Empty(suite.T(), violations)
}

func (suite *ValidateAttributesTestSuite) TestRFC3339Date() {
	violations := ValidateAttributes(suite.def, map[string]any{
		"email":  "a@b.c",
		"joined": "2024-06-01T12:00:00Z",
	})

	assert.Empty(suite.T(), violations)
}

func (suite *ValidateAttributesTestSuite) TestApplyDefaults() {
	attributes := ApplyDefaults(suite.def, map[string]any{"email": "a@b.c"})

	assert.Equal(suite.T(), true, attributes["active"])
	assert.Equal(suite.T(), "a@b.c", attributes["email"])
	_, present := attributes["age"]
	assert.False(suite.T(), present)
}

type ValidateDefinitionTestSuite struct {
	suite.Suite
}

func TestValidateDefinitionSuite(t *testing.T) {
	suite.Run(t, new(ValidateDefinitionTestSuite))
}

func (suite *ValidateDefinitionTestSuite) TestValidDefinition() {
	violations := validateDefinition(&EntityDefinition{
		Name: "order_line",
		Fields: []FieldDef{
			{Name: "sku", Type: FieldTypeString, Required: true},
			{Name: "qty", Type: FieldTypeNumber, Default: float64(1)},
		},
	})

	assert.Empty(suite.T(), violations)
}

func (suite *ValidateDefinitionTestSuite) TestInvalidDefinitions() {
	testCases := []struct {
		name  string
		def   EntityDefinition
		field string
	}{
		{
			name:  "UppercaseName",
			def:   EntityDefinition{Name: "Customer", Fields: []FieldDef{{Name: "a", Type: FieldTypeString}}},
			field: "name",
		},
		{
			name:  "NoFields",
			def:   EntityDefinition{Name: "customer"},
			field: "fields",
		},
		{
			name: "BadFieldType",
			def: EntityDefinition{Name: "customer",
				Fields: []FieldDef{{Name: "a", Type: "text"}}},
			field: "fields[0].type",
		},
		{
			name: "DefaultTypeMismatch",
			def: EntityDefinition{Name: "customer",
				Fields: []FieldDef{{Name: "a", Type: FieldTypeNumber, Default: "one"}}},
			field: "fields[0].default",
		},
	}

	for _, testCase := range testCases {
		suite.T().Run(testCase.name, func(t *testing.T) {
			violations := validateDefinition(&testCase.def)
			assert.Contains(t, violations, testCase.field)
		})
	}
}
