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
	"errors"

	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
)

// ErrWorkflowNotFound is returned by the store when a workflow does not exist.
var ErrWorkflowNotFound = errors.New("workflow not found")

// Client errors for workflow management operations.
var (
	// ErrorWorkflowNotFound is the error returned when the requested workflow is not found.
	ErrorWorkflowNotFound = serviceerror.ServiceError{
		Code:             "WFL-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Workflow not found",
		ErrorDescription: "The workflow with the specified id does not exist",
	}
	// ErrorInvalidWorkflowID is the error returned when the workflow id is empty or malformed.
	ErrorInvalidWorkflowID = serviceerror.ServiceError{
		Code:             "WFL-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid workflow id",
		ErrorDescription: "The provided workflow id is invalid",
	}
	// ErrorInvalidWorkflow is the error returned when the workflow payload fails validation.
	ErrorInvalidWorkflow = serviceerror.ServiceError{
		Code:             "WFL-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid workflow",
		ErrorDescription: "The workflow payload failed validation",
	}
	// ErrorWorkflowAlreadyExists is the error returned when the workflow name is taken.
	ErrorWorkflowAlreadyExists = serviceerror.ServiceError{
		Code:             "WFL-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Workflow already exists",
		ErrorDescription: "A workflow with the same name already exists",
	}
	// ErrorUnknownEntityDefinition is the error returned when a step references an unknown entity definition.
	ErrorUnknownEntityDefinition = serviceerror.ServiceError{
		Code:             "WFL-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Unknown entity definition",
		ErrorDescription: "A step references an entity definition that does not exist",
	}
	// ErrorInvalidRequestFormat is the error returned when the request body cannot be parsed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "WFL-1006",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorInvalidPaginationParams is the error returned for invalid pagination parameters.
	ErrorInvalidPaginationParams = serviceerror.ServiceError{
		Code:             "WFL-1007",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid pagination parameters",
		ErrorDescription: "The provided page or per_page value is invalid",
	}
)

// Server errors for workflow management operations.
var (
	// ErrorInternalServerError is the generic server side error.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "WFL-5001",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
