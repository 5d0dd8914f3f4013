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

package entity

import (
	"errors"

	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
)

// ErrRecordNotFound is returned by the store when the record does not exist.
var ErrRecordNotFound = errors.New("entity record not found")

// Client errors for entity record operations.
var (
	// ErrorRecordNotFound is the error returned when an entity record is not found.
	ErrorRecordNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1001",
		Error:            "Entity record not found",
		ErrorDescription: "The requested entity record could not be found",
	}
	// ErrorInvalidRecordID is the error returned when an invalid record ID is provided.
	ErrorInvalidRecordID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1002",
		Error:            "Invalid entity record ID",
		ErrorDescription: "The provided entity record ID is invalid or empty",
	}
	// ErrorInvalidAttributes is the error returned when record attributes fail schema validation.
	ErrorInvalidAttributes = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1003",
		Error:            "Invalid entity attributes",
		ErrorDescription: "One or more attributes failed validation against the entity definition",
	}
	// ErrorUniqueAttributeConflict is the error returned when a unique attribute value is taken.
	ErrorUniqueAttributeConflict = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1004",
		Error:            "Unique attribute conflict",
		ErrorDescription: "Another record already holds the same value for a unique attribute",
	}
	// ErrorInvalidFilter is the error returned when a filter expression is malformed.
	ErrorInvalidFilter = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1005",
		Error:            "Invalid filter",
		ErrorDescription: "The filter expression must have the form field:operator:value",
	}
	// ErrorInvalidRequestFormat is the error returned when the request body cannot be decoded.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1006",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorInvalidPaginationParams is the error returned when page parameters are invalid.
	ErrorInvalidPaginationParams = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1007",
		Error:            "Invalid pagination parameters",
		ErrorDescription: "The provided page or per_page parameter is invalid",
	}
)

// Server errors for entity record operations.
var (
	// ErrorInternalServerError is the generic server error.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ENT-5001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
