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

import "sort"

// MappingPair is the editable row form of a mapping entry used by step
// editors. Mappings are stored as dictionaries; editors work on pair lists.
type MappingPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// PairsToMapping collapses an editor pair list into a mapping. Every pair is
// kept, including pairs with an empty key or value; a later pair with the same
// key overwrites an earlier one.
func PairsToMapping(pairs []MappingPair) Mapping {
	mapping := make(Mapping, len(pairs))
	for _, pair := range pairs {
		mapping[pair.Key] = pair.Value
	}
	return mapping
}

// MappingToPairs expands a mapping into an editor pair list ordered by key.
func MappingToPairs(mapping Mapping) []MappingPair {
	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]MappingPair, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, MappingPair{Key: key, Value: mapping[key]})
	}
	return pairs
}
