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
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"time"
)

// Definition and field names double as URL path segments and record keys.
var nameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

// validateDefinition checks an entity definition payload and returns a
// field-path to message violations map. An empty map means the definition is
// valid.
func validateDefinition(def *EntityDefinition) map[string]string {
	violations := make(map[string]string)

	if !nameRegex.MatchString(def.Name) {
		violations["name"] = "name must start with a lowercase letter and contain only " +
			"lowercase letters, digits and underscores"
	}

	if len(def.Fields) == 0 {
		violations["fields"] = "at least one field is required"
		return violations
	}
	if len(def.Fields) > maxFieldCount {
		violations["fields"] = fmt.Sprintf("a definition may declare at most %d fields", maxFieldCount)
		return violations
	}

	seen := make(map[string]bool, len(def.Fields))
	for i, field := range def.Fields {
		path := fmt.Sprintf("fields[%d]", i)

		if !nameRegex.MatchString(field.Name) {
			violations[path+".name"] = "field name must start with a lowercase letter and contain only " +
				"lowercase letters, digits and underscores"
		} else if seen[field.Name] {
			violations[path+".name"] = "duplicate field name"
		}
		seen[field.Name] = true

		if !slices.Contains(supportedFieldTypes, field.Type) {
			violations[path+".type"] = "unsupported field type"
			continue
		}

		if field.Default != nil {
			if msg := checkValueType(field.Type, field.Default); msg != "" {
				violations[path+".default"] = msg
			}
		}
	}

	return violations
}

// ValidateAttributes checks a record attribute map against the definition and
// returns a field to message violations map. Missing required fields, unknown
// attributes and type mismatches are all reported; an empty map means the
// record is valid.
func ValidateAttributes(def *EntityDefinition, attributes map[string]any) map[string]string {
	violations := make(map[string]string)

	fieldsByName := make(map[string]FieldDef, len(def.Fields))
	for _, field := range def.Fields {
		fieldsByName[field.Name] = field
	}

	for name := range attributes {
		if _, known := fieldsByName[name]; !known {
			violations[name] = "unknown attribute"
		}
	}

	for _, field := range def.Fields {
		value, present := attributes[field.Name]
		if !present || value == nil {
			if field.Required && field.Default == nil {
				violations[field.Name] = "required attribute is missing"
			}
			continue
		}
		if msg := checkValueType(field.Type, value); msg != "" {
			violations[field.Name] = msg
		}
	}

	return violations
}

// ApplyDefaults returns a copy of the attribute map with the definition's
// default values filled in for absent fields.
func ApplyDefaults(def *EntityDefinition, attributes map[string]any) map[string]any {
	result := make(map[string]any, len(attributes))
	for name, value := range attributes {
		result[name] = value
	}
	for _, field := range def.Fields {
		if _, present := result[field.Name]; !present && field.Default != nil {
			result[field.Name] = field.Default
		}
	}
	return result
}

// checkValueType reports a violation message when the value does not conform
// to the field type. Numeric values arrive as json.Number or float64 depending
// on the decoder.
func checkValueType(fieldType FieldType, value any) string {
	switch fieldType {
	case FieldTypeString:
		if _, ok := value.(string); !ok {
			return "value must be a string"
		}
	case FieldTypeNumber:
		switch value.(type) {
		case float64, int, int64, json.Number:
		default:
			return "value must be a number"
		}
	case FieldTypeBoolean:
		if _, ok := value.(bool); !ok {
			return "value must be a boolean"
		}
	case FieldTypeDate:
		str, ok := value.(string)
		if !ok {
			return "value must be a date string"
		}
		if !isValidDate(str) {
			return "value must be an RFC 3339 timestamp or a YYYY-MM-DD date"
		}
	case FieldTypeJSON:
		// Any JSON value is acceptable.
	}
	return ""
}

func isValidDate(value string) bool {
	if _, err := time.Parse(time.RFC3339, value); err == nil {
		return true
	}
	_, err := time.Parse("2006-01-02", value)
	return err == nil
}
