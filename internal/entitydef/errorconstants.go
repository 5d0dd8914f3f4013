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

import (
	"errors"

	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
)

// ErrEntityDefinitionNotFound is returned by the store when the definition does not exist.
var ErrEntityDefinitionNotFound = errors.New("entity definition not found")

// Client errors for entity definition operations.
var (
	// ErrorEntityDefinitionNotFound is the error returned when an entity definition is not found.
	ErrorEntityDefinitionNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "EDF-1001",
		Error:            "Entity definition not found",
		ErrorDescription: "The requested entity definition could not be found",
	}
	// ErrorInvalidEntityDefinitionID is the error returned when an invalid definition ID is provided.
	ErrorInvalidEntityDefinitionID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "EDF-1002",
		Error:            "Invalid entity definition ID",
		ErrorDescription: "The provided entity definition ID is invalid or empty",
	}
	// ErrorInvalidEntityDefinition is the error returned when the definition payload fails validation.
	ErrorInvalidEntityDefinition = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "EDF-1003",
		Error:            "Invalid entity definition",
		ErrorDescription: "The provided entity definition failed validation",
	}
	// ErrorEntityDefinitionAlreadyExists is the error returned when the definition name is taken.
	ErrorEntityDefinitionAlreadyExists = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "EDF-1004",
		Error:            "Entity definition already exists",
		ErrorDescription: "An entity definition with the same name already exists",
	}
	// ErrorEntityDefinitionInUse is the error returned when deleting a definition that still has records.
	ErrorEntityDefinitionInUse = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "EDF-1005",
		Error:            "Entity definition in use",
		ErrorDescription: "The entity definition still has records and cannot be deleted",
	}
	// ErrorInvalidRequestFormat is the error returned when the request body cannot be decoded.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "EDF-1006",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorInvalidPaginationParams is the error returned when page parameters are invalid.
	ErrorInvalidPaginationParams = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "EDF-1007",
		Error:            "Invalid pagination parameters",
		ErrorDescription: "The provided page or per_page parameter is invalid",
	}
)

// Server errors for entity definition operations.
var (
	// ErrorInternalServerError is the generic server error.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "EDF-5001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
