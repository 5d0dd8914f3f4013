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

package permission

import (
	"errors"

	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
)

// ErrSchemeNotFound is returned by the store when a permission scheme does not exist.
var ErrSchemeNotFound = errors.New("permission scheme not found")

// Client errors for permission scheme management operations.
var (
	// ErrorSchemeNotFound is the error returned when the requested scheme is not found.
	ErrorSchemeNotFound = serviceerror.ServiceError{
		Code:             "PRM-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Permission scheme not found",
		ErrorDescription: "The permission scheme with the specified id does not exist",
	}
	// ErrorInvalidSchemeID is the error returned when the scheme id is empty or malformed.
	ErrorInvalidSchemeID = serviceerror.ServiceError{
		Code:             "PRM-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid scheme id",
		ErrorDescription: "The provided permission scheme id is invalid",
	}
	// ErrorInvalidScheme is the error returned when the scheme payload fails validation.
	ErrorInvalidScheme = serviceerror.ServiceError{
		Code:             "PRM-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid permission scheme",
		ErrorDescription: "The permission scheme payload failed validation",
	}
	// ErrorSchemeAlreadyExists is the error returned when the scheme name is taken.
	ErrorSchemeAlreadyExists = serviceerror.ServiceError{
		Code:             "PRM-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Permission scheme already exists",
		ErrorDescription: "A permission scheme with the same name already exists",
	}
	// ErrorSchemeInUse is the error returned when deleting a scheme referenced by roles.
	ErrorSchemeInUse = serviceerror.ServiceError{
		Code:             "PRM-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Permission scheme in use",
		ErrorDescription: "The permission scheme is referenced by one or more roles",
	}
	// ErrorInvalidRequestFormat is the error returned when the request body cannot be parsed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "PRM-1006",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorInvalidPaginationParams is the error returned for invalid pagination parameters.
	ErrorInvalidPaginationParams = serviceerror.ServiceError{
		Code:             "PRM-1007",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid pagination parameters",
		ErrorDescription: "The provided page or per_page value is invalid",
	}
	// ErrorInvalidEvaluationRequest is the error returned for an incomplete evaluation request.
	ErrorInvalidEvaluationRequest = serviceerror.ServiceError{
		Code:             "PRM-1008",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid evaluation request",
		ErrorDescription: "Both resource and action are required for access evaluation",
	}
)

// Server errors for permission scheme management operations.
var (
	// ErrorInternalServerError is the generic server side error.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "PRM-5001",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
