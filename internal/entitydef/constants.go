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

// FieldType represents the data type of an entity definition field.
type FieldType string

const (
	// FieldTypeString represents a text field.
	FieldTypeString FieldType = "string"
	// FieldTypeNumber represents a numeric field.
	FieldTypeNumber FieldType = "number"
	// FieldTypeBoolean represents a boolean field.
	FieldTypeBoolean FieldType = "boolean"
	// FieldTypeDate represents a date field in RFC 3339 or YYYY-MM-DD form.
	FieldTypeDate FieldType = "date"
	// FieldTypeJSON represents an arbitrary JSON value field.
	FieldTypeJSON FieldType = "json"
)

// supportedFieldTypes lists all the supported field types.
var supportedFieldTypes = []FieldType{
	FieldTypeString,
	FieldTypeNumber,
	FieldTypeBoolean,
	FieldTypeDate,
	FieldTypeJSON,
}

// maxFieldCount is the maximum number of fields an entity definition may declare.
const maxFieldCount = 100
