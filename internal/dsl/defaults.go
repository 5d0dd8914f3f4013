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

// DefaultCSVOptions returns the default options for the CSV format.
func DefaultCSVOptions() map[string]any {
	return map[string]any{
		"has_header": true,
		"delimiter":  ",",
	}
}

// DefaultSourceConfig returns the default source configuration for a format source.
func DefaultSourceConfig() *SourceConfig {
	return &SourceConfig{
		SourceType: SourceTypeURI,
		Config:     map[string]any{},
	}
}

// DefaultFromFormat returns the default format configuration for a format source.
func DefaultFromFormat() *FormatConfig {
	return &FormatConfig{
		FormatType: FormatTypeCSV,
		Options:    map[string]any{},
	}
}

// DefaultToFormat returns the default format configuration for a format destination.
func DefaultToFormat() *FormatConfig {
	return &FormatConfig{
		FormatType: FormatTypeJSON,
		Options:    map[string]any{},
	}
}

// DefaultOutput returns the default output configuration for a format destination.
func DefaultOutput() *OutputDef {
	return &OutputDef{
		Mode: OutputModeAPI,
	}
}

// DefaultStep returns a freshly initialized pipeline step, used when a new
// step is added to a workflow configuration.
func DefaultStep() Step {
	return Step{
		From: FromDef{
			Type:    EndpointTypeFormat,
			Source:  DefaultSourceConfig(),
			Format:  DefaultFromFormat(),
			Mapping: Mapping{},
		},
		Transform: Transform{
			Type: TransformTypeNone,
		},
		To: ToDef{
			Type:    EndpointTypeFormat,
			Output:  DefaultOutput(),
			Format:  DefaultToFormat(),
			Mapping: Mapping{},
		},
	}
}
