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
	"errors"
	"regexp"
	"slices"
	"strings"
)

// FilterOperator enumerates the supported record filter operators.
type FilterOperator string

const (
	// OperatorEquals matches records whose attribute equals the value.
	OperatorEquals FilterOperator = "eq"
	// OperatorNotEquals matches records whose attribute differs from the value.
	OperatorNotEquals FilterOperator = "neq"
	// OperatorGreaterThan matches records whose numeric attribute exceeds the value.
	OperatorGreaterThan FilterOperator = "gt"
	// OperatorLessThan matches records whose numeric attribute is below the value.
	OperatorLessThan FilterOperator = "lt"
	// OperatorContains matches records whose attribute contains the value as a substring.
	OperatorContains FilterOperator = "contains"
)

// supportedOperators lists all the supported filter operators.
var supportedOperators = []FilterOperator{
	OperatorEquals,
	OperatorNotEquals,
	OperatorGreaterThan,
	OperatorLessThan,
	OperatorContains,
}

// Filter field names are interpolated into JSON-path SQL expressions, so they
// are restricted to the same shape entity definition field names have.
var filterFieldRegex = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

// ErrInvalidFilter is returned when a filter expression cannot be parsed.
var ErrInvalidFilter = errors.New("filter must have the form field:operator:value")

// Filter narrows a record list query to attributes matching a predicate.
type Filter struct {
	Field    string
	Operator FilterOperator
	Value    string
}

// ParseFilter parses a field:operator:value filter expression. The value part
// may itself contain colons. An empty expression yields a nil filter.
func ParseFilter(expr string) (*Filter, error) {
	if expr == "" {
		return nil, nil
	}

	parts := strings.SplitN(expr, ":", 3)
	if len(parts) != 3 {
		return nil, ErrInvalidFilter
	}

	filter := &Filter{
		Field:    parts[0],
		Operator: FilterOperator(parts[1]),
		Value:    parts[2],
	}
	if !filterFieldRegex.MatchString(filter.Field) {
		return nil, ErrInvalidFilter
	}
	if !slices.Contains(supportedOperators, filter.Operator) {
		return nil, ErrInvalidFilter
	}
	return filter, nil
}
