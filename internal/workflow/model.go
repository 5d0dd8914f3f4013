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

package workflow

import (
	"encoding/json"
	"time"

	"github.com/lattice-hq/lattice/internal/dsl"
)

// Workflow is a named pipeline of steps. Steps are stored in sanitized form
// only; every write passes them through the step sanitizer.
type Workflow struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Steps       []dsl.Step `json:"steps"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BasicWorkflow holds the summary attributes returned in list responses.
type BasicWorkflow struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StepCount   int       `json:"step_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WorkflowListResponse is the paginated list of workflows.
type WorkflowListResponse struct {
	Total     int             `json:"total"`
	Workflows []BasicWorkflow `json:"workflows"`
}

// workflowRequest is the create/update request payload. Steps are accepted as
// raw JSON so the sanitizer can repair loosely shaped step objects.
type workflowRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Steps       json.RawMessage `json:"steps,omitempty"`
}
