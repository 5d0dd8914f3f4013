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

package dsl

import (
	"encoding/json"
	"errors"
)

// ErrNotAnObject is returned when a value offered as a step is not an object.
var ErrNotAnObject = errors.New("step is not an object")

// SanitizeStep repairs a loosely-typed value purporting to be a pipeline step
// into a valid Step. Missing pieces are filled with defaults and fields left
// over from a previous variant of a tagged union are stripped; stored
// configurations written by older editors routinely carry both kinds of damage.
// It is a best-effort repair function, not a validator: the only error it
// returns is ErrNotAnObject when the input is not an object at all. The
// caller's input is never mutated.
func SanitizeStep(value any) (Step, error) {
	switch v := value.(type) {
	case Step:
		return sanitizeTyped(v), nil
	case *Step:
		if v == nil {
			return Step{}, ErrNotAnObject
		}
		return sanitizeTyped(*v), nil
	case map[string]any:
		return sanitizeTyped(stepFromObject(v)), nil
	case json.RawMessage:
		return sanitizeRaw(v)
	case []byte:
		return sanitizeRaw(v)
	default:
		return Step{}, ErrNotAnObject
	}
}

// SanitizeSteps repairs a loosely-typed value purporting to be a list of
// pipeline steps. Non-array input yields an empty list without error; array
// input is sanitized element-wise.
func SanitizeSteps(value any) ([]Step, error) {
	steps := make([]Step, 0)

	switch v := value.(type) {
	case []Step:
		for _, step := range v {
			steps = append(steps, sanitizeTyped(step))
		}
	case []map[string]any:
		for _, obj := range v {
			steps = append(steps, sanitizeTyped(stepFromObject(obj)))
		}
	case []any:
		for _, element := range v {
			step, err := SanitizeStep(element)
			if err != nil {
				return nil, err
			}
			steps = append(steps, step)
		}
	case json.RawMessage:
		return sanitizeRawList(v)
	case []byte:
		return sanitizeRawList(v)
	}

	return steps, nil
}

// EnsureCSVOptions mutates the step in place, assigning the default CSV
// options to either endpoint whose format is csv and has no options yet.
// Calling it repeatedly has no further effect.
func EnsureCSVOptions(step *Step) {
	if step == nil {
		return
	}
	if step.From.Format != nil && step.From.Format.FormatType == FormatTypeCSV && step.From.Format.Options == nil {
		step.From.Format.Options = DefaultCSVOptions()
	}
	if step.To.Format != nil && step.To.Format.FormatType == FormatTypeCSV && step.To.Format.Options == nil {
		step.To.Format.Options = DefaultCSVOptions()
	}
}

// sanitizeRaw decodes raw JSON into an object and sanitizes it.
func sanitizeRaw(raw []byte) (Step, error) {
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return Step{}, ErrNotAnObject
	}
	return sanitizeTyped(stepFromObject(obj)), nil
}

// sanitizeRawList decodes raw JSON into a list and sanitizes it element-wise.
func sanitizeRawList(raw []byte) ([]Step, error) {
	var list []any
	if err := json.Unmarshal(raw, &list); err != nil {
		return make([]Step, 0), nil
	}
	return SanitizeSteps(list)
}

// sanitizeTyped applies the repair rules to a typed step. Pointer fields are
// cloned before modification so the caller's value is left untouched.
func sanitizeTyped(s Step) Step {
	s.From = sanitizeFrom(s.From)
	s.Transform = sanitizeTransform(s.Transform)
	s.To = sanitizeTo(s.To)
	return s
}

// sanitizeFrom repairs a format source definition. Entity sources and sources
// with an unrecognized type are passed through untouched apart from the
// mapping.
func sanitizeFrom(from FromDef) FromDef {
	if from.Type == EndpointTypeFormat {
		if from.Source == nil {
			from.Source = DefaultSourceConfig()
		} else {
			from.Source = cloneSourceConfig(from.Source)
			if from.Source.SourceType == "" {
				from.Source.SourceType = SourceTypeURI
			}
			if from.Source.Config == nil {
				from.Source.Config = map[string]any{}
			}
		}

		// An api source means "accept inbound POSTs to this workflow" and must
		// not carry a caller-supplied endpoint.
		if from.Source.SourceType == SourceTypeAPI {
			delete(from.Source.Config, "endpoint")
		}

		if from.Format == nil {
			from.Format = DefaultFromFormat()
		} else {
			from.Format = cloneFormatConfig(from.Format)
			if from.Format.FormatType == "" {
				from.Format.FormatType = FormatTypeCSV
			}
		}
	}

	if from.Mapping == nil {
		from.Mapping = Mapping{}
	}
	return from
}

// sanitizeTo repairs a destination definition. An entity destination has any
// stray output removed and is otherwise passed through untouched.
func sanitizeTo(to ToDef) ToDef {
	switch to.Type {
	case EndpointTypeEntity:
		// Legacy payloads sometimes carry a stray output from a prior format
		// state of the editor.
		to.Output = nil
	case EndpointTypeFormat:
		if to.Output == nil {
			to.Output = DefaultOutput()
		} else {
			output := *to.Output
			if output.Mode == "" {
				output.Mode = OutputModeAPI
			}
			to.Output = &output
		}

		if to.Format == nil {
			to.Format = DefaultToFormat()
		} else {
			to.Format = cloneFormatConfig(to.Format)
			if to.Format.FormatType == "" {
				to.Format.FormatType = FormatTypeJSON
			}
		}
	}

	if to.Mapping == nil {
		to.Mapping = Mapping{}
	}
	return to
}

// sanitizeTransform repairs a transform definition. A missing or unknown type
// collapses to the none variant.
func sanitizeTransform(t Transform) Transform {
	switch t.Type {
	case TransformTypeArithmetic:
		t.Left = cloneOperand(t.Left)
		t.Right = cloneOperand(t.Right)
		t.Separator = ""
	case TransformTypeConcat:
		t.Left = cloneOperand(t.Left)
		t.Right = cloneOperand(t.Right)
		t.Op = ""
	default:
		return Transform{Type: TransformTypeNone}
	}
	return t
}

func cloneSourceConfig(source *SourceConfig) *SourceConfig {
	clone := *source
	clone.Config = copyAnyMap(source.Config)
	if source.Auth != nil {
		auth := *source.Auth
		auth.RequiredClaims = copyStringMap(source.Auth.RequiredClaims)
		clone.Auth = &auth
	}
	return &clone
}

func cloneFormatConfig(format *FormatConfig) *FormatConfig {
	clone := *format
	clone.Options = copyAnyMap(format.Options)
	return &clone
}

func cloneOperand(operand *Operand) *Operand {
	if operand == nil {
		return nil
	}
	clone := *operand
	return &clone
}

func copyAnyMap(source map[string]any) map[string]any {
	if source == nil {
		return nil
	}
	copied := make(map[string]any, len(source))
	for key, value := range source {
		copied[key] = value
	}
	return copied
}

func copyStringMap(source map[string]string) map[string]string {
	if source == nil {
		return nil
	}
	copied := make(map[string]string, len(source))
	for key, value := range source {
		copied[key] = value
	}
	return copied
}
