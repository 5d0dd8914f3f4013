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

// Package constants defines server-wide constant values.
package constants

const (
	// LogLevelEnvironmentVariable is the environment variable used to set the log level.
	LogLevelEnvironmentVariable = "LOG_LEVEL"
	// DefaultLogLevel is the default log level used when no level is configured.
	DefaultLogLevel = "info"

	// ContentTypeHeaderName is the name of the Content-Type header.
	ContentTypeHeaderName = "Content-Type"
	// ContentTypeJSON is the JSON content type value.
	ContentTypeJSON = "application/json"

	// DefaultPageSize is the default number of items returned by list endpoints.
	DefaultPageSize = 30
	// MaxPageSize is the maximum number of items a list endpoint returns per page.
	MaxPageSize = 100
)
