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

package apikey

import (
	"errors"

	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
)

// ErrAPIKeyNotFound is returned by the store when an API key does not exist.
var ErrAPIKeyNotFound = errors.New("api key not found")

// Client errors for API key management operations.
var (
	// ErrorAPIKeyNotFound is the error returned when the requested key is not found.
	ErrorAPIKeyNotFound = serviceerror.ServiceError{
		Code:             "KEY-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "API key not found",
		ErrorDescription: "The API key with the specified id does not exist",
	}
	// ErrorInvalidAPIKeyID is the error returned when the key id is empty or malformed.
	ErrorInvalidAPIKeyID = serviceerror.ServiceError{
		Code:             "KEY-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid API key id",
		ErrorDescription: "The provided API key id is invalid",
	}
	// ErrorInvalidAPIKey is the error returned when the key payload fails validation.
	ErrorInvalidAPIKey = serviceerror.ServiceError{
		Code:             "KEY-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid API key request",
		ErrorDescription: "The API key payload failed validation",
	}
	// ErrorAPIKeyAlreadyRevoked is the error returned when revoking an already revoked key.
	ErrorAPIKeyAlreadyRevoked = serviceerror.ServiceError{
		Code:             "KEY-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "API key already revoked",
		ErrorDescription: "The API key has already been revoked",
	}
	// ErrorInvalidRequestFormat is the error returned when the request body cannot be parsed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "KEY-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorInvalidPaginationParams is the error returned for invalid pagination parameters.
	ErrorInvalidPaginationParams = serviceerror.ServiceError{
		Code:             "KEY-1006",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid pagination parameters",
		ErrorDescription: "The provided page or per_page value is invalid",
	}
)

// Server errors for API key management operations.
var (
	// ErrorInternalServerError is the generic server side error.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "KEY-5001",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
