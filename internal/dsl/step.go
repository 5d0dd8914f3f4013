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

// Package dsl defines the workflow pipeline step configuration model and its sanitizers.
//
// A workflow configuration is an ordered list of steps. Each step reads records
// from a source (from), optionally applies a transformation (transform), and
// writes them to a destination (to). Sources and destinations are tagged unions
// discriminated by their type field: a "format" endpoint moves serialized data
// (CSV, JSON) while an "entity" endpoint moves dynamic entity records.
package dsl

// EndpointType discriminates the from/to endpoint variants.
type EndpointType string

const (
	// EndpointTypeFormat denotes a serialized-data endpoint.
	EndpointTypeFormat EndpointType = "format"
	// EndpointTypeEntity denotes a dynamic-entity endpoint.
	EndpointTypeEntity EndpointType = "entity"
)

// Source type constants for format sources.
const (
	// SourceTypeURI reads input from a remote location.
	SourceTypeURI = "uri"
	// SourceTypeAPI accepts inbound POSTs to the workflow. An api source never
	// carries a caller-supplied endpoint; the sanitizer strips one if present.
	SourceTypeAPI = "api"
)

// Format type constants.
const (
	// FormatTypeCSV denotes comma-separated values.
	FormatTypeCSV = "csv"
	// FormatTypeJSON denotes JSON.
	FormatTypeJSON = "json"
)

// OutputMode describes where a format destination delivers its output.
type OutputMode string

const (
	// OutputModeDownload makes the result available as a download.
	OutputModeDownload OutputMode = "download"
	// OutputModeAPI returns the result in the API response.
	OutputModeAPI OutputMode = "api"
	// OutputModePush delivers the result to a remote destination.
	OutputModePush OutputMode = "push"
)

// WriteMode describes how an entity destination writes records.
type WriteMode string

const (
	// WriteModeCreate always creates new records.
	WriteModeCreate WriteMode = "create"
	// WriteModeUpdate only updates existing records.
	WriteModeUpdate WriteMode = "update"
	// WriteModeCreateOrUpdate updates when the update key matches, creates otherwise.
	WriteModeCreateOrUpdate WriteMode = "create_or_update"
)

// TransformType discriminates the transform variants.
type TransformType string

const (
	// TransformTypeNone applies no transformation.
	TransformTypeNone TransformType = "none"
	// TransformTypeArithmetic computes a numeric field from two operands.
	TransformTypeArithmetic TransformType = "arithmetic"
	// TransformTypeConcat concatenates two string operands into a field.
	TransformTypeConcat TransformType = "concat"
)

// ArithmeticOp enumerates the arithmetic transform operators.
type ArithmeticOp string

const (
	// OpAdd adds the operands.
	OpAdd ArithmeticOp = "add"
	// OpSub subtracts the right operand from the left.
	OpSub ArithmeticOp = "sub"
	// OpMul multiplies the operands.
	OpMul ArithmeticOp = "mul"
	// OpDiv divides the left operand by the right.
	OpDiv ArithmeticOp = "div"
)

// OperandType discriminates operand variants.
type OperandType string

const (
	// OperandTypeField reads the operand from a record field.
	OperandTypeField OperandType = "field"
	// OperandTypeConst uses a constant numeric value.
	OperandTypeConst OperandType = "const"
	// OperandTypeConstString uses a constant string value.
	OperandTypeConstString OperandType = "const_string"
)

// AuthType discriminates source authentication variants.
type AuthType string

const (
	// AuthTypeNone disables authentication.
	AuthTypeNone AuthType = "none"
	// AuthTypeAPIKey sends a static key in a request header.
	AuthTypeAPIKey AuthType = "api_key"
	// AuthTypeBasic sends HTTP basic credentials.
	AuthTypeBasic AuthType = "basic_auth"
	// AuthTypePreSharedKey expects a pre-shared key in a header or body field.
	AuthTypePreSharedKey AuthType = "pre_shared_key"
	// AuthTypeEntityJWT expects a JWT carrying the configured claims.
	AuthTypeEntityJWT AuthType = "entity_jwt"
)

// KeyLocation enumerates where a pre-shared key is expected.
type KeyLocation string

const (
	// KeyLocationHeader expects the key in a request header.
	KeyLocationHeader KeyLocation = "header"
	// KeyLocationBody expects the key in a body field.
	KeyLocationBody KeyLocation = "body"
)

// Mapping is a field-rename dictionary applied when data crosses between
// pipeline stages. Insertion order is irrelevant.
type Mapping map[string]string

// AuthConfig describes how a source authenticates inbound or outbound calls.
// Exactly the fields of the variant selected by Type are meaningful.
type AuthConfig struct {
	Type AuthType `json:"type"`

	// api_key
	Key        string `json:"key,omitempty"`
	HeaderName string `json:"header_name,omitempty"`

	// basic_auth
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`

	// pre_shared_key (reuses Key)
	Location  KeyLocation `json:"location,omitempty"`
	FieldName string      `json:"field_name,omitempty"`

	// entity_jwt
	RequiredClaims map[string]string `json:"required_claims,omitempty"`
}

// SourceConfig describes where a format source reads from.
type SourceConfig struct {
	SourceType string         `json:"source_type"`
	Config     map[string]any `json:"config"`
	Auth       *AuthConfig    `json:"auth,omitempty"`
}

// FormatConfig describes the serialization format of a format endpoint.
type FormatConfig struct {
	FormatType string         `json:"format_type"`
	Options    map[string]any `json:"options,omitempty"`
}

// OutputDef describes where a format destination delivers its output.
type OutputDef struct {
	Mode        OutputMode `json:"mode"`
	Destination string     `json:"destination,omitempty"`
	Method      string     `json:"method,omitempty"`
}

// EntityFilter narrows the records read from an entity source.
type EntityFilter struct {
	Field    string `json:"field"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

// FromDef describes the data source of a step. Type selects the variant:
// format sources carry Source and Format, entity sources carry
// EntityDefinition and an optional Filter. Mapping is always present.
type FromDef struct {
	Type EndpointType `json:"type"`

	// format variant
	Source *SourceConfig `json:"source,omitempty"`
	Format *FormatConfig `json:"format,omitempty"`

	// entity variant
	EntityDefinition string        `json:"entity_definition,omitempty"`
	Filter           *EntityFilter `json:"filter,omitempty"`

	Mapping Mapping `json:"mapping"`
}

// ToDef describes the data destination of a step. Type selects the variant:
// format destinations carry Output and Format, entity destinations carry
// EntityDefinition, Path, Mode and an optional UpdateKey. An entity
// destination never carries an Output; the sanitizer strips one if present.
type ToDef struct {
	Type EndpointType `json:"type"`

	// format variant
	Output *OutputDef    `json:"output,omitempty"`
	Format *FormatConfig `json:"format,omitempty"`

	// entity variant
	EntityDefinition string    `json:"entity_definition,omitempty"`
	Path             string    `json:"path,omitempty"`
	Mode             WriteMode `json:"mode,omitempty"`
	UpdateKey        string    `json:"update_key,omitempty"`

	Mapping Mapping `json:"mapping"`
}

// Operand is an operand of a transform. Arithmetic transforms use the field
// and const variants, concat transforms use the field and const_string
// variants.
type Operand struct {
	Type  OperandType `json:"type"`
	Field string      `json:"field,omitempty"`
	Value any         `json:"value,omitempty"`
}

// Transform describes the optional transformation applied between the source
// and the destination. Type selects the variant.
type Transform struct {
	Type TransformType `json:"type"`

	// arithmetic and concat
	Target string   `json:"target,omitempty"`
	Left   *Operand `json:"left,omitempty"`
	Right  *Operand `json:"right,omitempty"`

	// arithmetic
	Op ArithmeticOp `json:"op,omitempty"`

	// concat
	Separator string `json:"separator,omitempty"`
}

// Step is one stage of a workflow pipeline.
type Step struct {
	From      FromDef   `json:"from"`
	Transform Transform `json:"transform"`
	To        ToDef     `json:"to"`
}
