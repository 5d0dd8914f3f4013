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

// Lenient conversion from generic JSON objects into the typed step model.
// Fields of the wrong shape are dropped rather than rejected; the sanitizer
// then fills the resulting gaps with defaults.

func stepFromObject(obj map[string]any) Step {
	return Step{
		From:      fromDefFromObject(objectField(obj, "from")),
		Transform: transformFromObject(objectField(obj, "transform")),
		To:        toDefFromObject(objectField(obj, "to")),
	}
}

func fromDefFromObject(obj map[string]any) FromDef {
	from := FromDef{
		Type:             EndpointType(stringField(obj, "type")),
		EntityDefinition: stringField(obj, "entity_definition"),
		Mapping:          mappingFromObject(obj["mapping"]),
	}
	if source, ok := obj["source"].(map[string]any); ok {
		from.Source = sourceConfigFromObject(source)
	}
	if format, ok := obj["format"].(map[string]any); ok {
		from.Format = formatConfigFromObject(format)
	}
	if filter, ok := obj["filter"].(map[string]any); ok {
		from.Filter = &EntityFilter{
			Field:    stringField(filter, "field"),
			Operator: stringField(filter, "operator"),
			Value:    filter["value"],
		}
	}
	return from
}

func toDefFromObject(obj map[string]any) ToDef {
	to := ToDef{
		Type:             EndpointType(stringField(obj, "type")),
		EntityDefinition: stringField(obj, "entity_definition"),
		Path:             stringField(obj, "path"),
		Mode:             WriteMode(stringField(obj, "mode")),
		UpdateKey:        stringField(obj, "update_key"),
		Mapping:          mappingFromObject(obj["mapping"]),
	}
	if output, ok := obj["output"].(map[string]any); ok {
		to.Output = &OutputDef{
			Mode:        OutputMode(stringField(output, "mode")),
			Destination: stringField(output, "destination"),
			Method:      stringField(output, "method"),
		}
	}
	if format, ok := obj["format"].(map[string]any); ok {
		to.Format = formatConfigFromObject(format)
	}
	return to
}

func transformFromObject(obj map[string]any) Transform {
	transform := Transform{
		Type:      TransformType(stringField(obj, "type")),
		Target:    stringField(obj, "target"),
		Op:        ArithmeticOp(stringField(obj, "op")),
		Separator: stringField(obj, "separator"),
	}
	transform.Left = operandFromObject(obj["left"])
	transform.Right = operandFromObject(obj["right"])
	return transform
}

func operandFromObject(value any) *Operand {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	return &Operand{
		Type:  OperandType(stringField(obj, "type")),
		Field: stringField(obj, "field"),
		Value: obj["value"],
	}
}

func sourceConfigFromObject(obj map[string]any) *SourceConfig {
	source := &SourceConfig{
		SourceType: stringField(obj, "source_type"),
	}
	if config, ok := obj["config"].(map[string]any); ok {
		source.Config = copyAnyMap(config)
	}
	if auth, ok := obj["auth"].(map[string]any); ok {
		source.Auth = authConfigFromObject(auth)
	}
	return source
}

func authConfigFromObject(obj map[string]any) *AuthConfig {
	auth := &AuthConfig{
		Type:       AuthType(stringField(obj, "type")),
		Key:        stringField(obj, "key"),
		HeaderName: stringField(obj, "header_name"),
		Username:   stringField(obj, "username"),
		Password:   stringField(obj, "password"),
		Location:   KeyLocation(stringField(obj, "location")),
		FieldName:  stringField(obj, "field_name"),
	}
	if claims, ok := obj["required_claims"].(map[string]any); ok {
		auth.RequiredClaims = make(map[string]string, len(claims))
		for name, value := range claims {
			if str, ok := value.(string); ok {
				auth.RequiredClaims[name] = str
			}
		}
	}
	return auth
}

func formatConfigFromObject(obj map[string]any) *FormatConfig {
	format := &FormatConfig{
		FormatType: stringField(obj, "format_type"),
	}
	if options, ok := obj["options"].(map[string]any); ok {
		format.Options = copyAnyMap(options)
	}
	return format
}

func mappingFromObject(value any) Mapping {
	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	mapping := make(Mapping, len(obj))
	for source, target := range obj {
		if str, ok := target.(string); ok {
			mapping[source] = str
		}
	}
	return mapping
}

func objectField(obj map[string]any, key string) map[string]any {
	if nested, ok := obj[key].(map[string]any); ok {
		return nested
	}
	return map[string]any{}
}

func stringField(obj map[string]any, key string) string {
	if str, ok := obj[key].(string); ok {
		return str
	}
	return ""
}
