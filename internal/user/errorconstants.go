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

package user

import (
	"errors"

	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
)

// ErrUserNotFound is returned by the store when the user does not exist.
var ErrUserNotFound = errors.New("user not found")

// Client errors for user management operations.
var (
	// ErrorUserNotFound is the error returned when a user is not found.
	ErrorUserNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1001",
		Error:            "User not found",
		ErrorDescription: "The requested user could not be found",
	}
	// ErrorInvalidUserID is the error returned when an invalid user ID is provided.
	ErrorInvalidUserID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1002",
		Error:            "Invalid user ID",
		ErrorDescription: "The provided user ID is invalid or empty",
	}
	// ErrorInvalidUser is the error returned when the user payload fails validation.
	ErrorInvalidUser = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1003",
		Error:            "Invalid user",
		ErrorDescription: "The provided user failed validation",
	}
	// ErrorUsernameAlreadyExists is the error returned when the username is taken.
	ErrorUsernameAlreadyExists = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1004",
		Error:            "Username already exists",
		ErrorDescription: "A user with the same username already exists",
	}
	// ErrorEmailAlreadyExists is the error returned when the email is taken.
	ErrorEmailAlreadyExists = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1005",
		Error:            "Email already exists",
		ErrorDescription: "A user with the same email already exists",
	}
	// ErrorInvalidCredentials is the error returned when credential verification fails.
	ErrorInvalidCredentials = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1006",
		Error:            "Invalid credentials",
		ErrorDescription: "The provided username or password is incorrect",
	}
	// ErrorInvalidRequestFormat is the error returned when the request body cannot be decoded.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1007",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorInvalidPaginationParams is the error returned when page parameters are invalid.
	ErrorInvalidPaginationParams = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "USR-1008",
		Error:            "Invalid pagination parameters",
		ErrorDescription: "The provided page or per_page parameter is invalid",
	}
)

// Server errors for user management operations.
var (
	// ErrorInternalServerError is the generic server error.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "USR-5001",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
