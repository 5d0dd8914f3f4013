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

package role

import (
	"errors"

	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
)

// ErrRoleNotFound is returned by the store when a role does not exist.
var ErrRoleNotFound = errors.New("role not found")

// Client errors for role management operations.
var (
	// ErrorRoleNotFound is the error returned when the requested role is not found.
	ErrorRoleNotFound = serviceerror.ServiceError{
		Code:             "ROL-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Role not found",
		ErrorDescription: "The role with the specified id does not exist",
	}
	// ErrorInvalidRoleID is the error returned when the role id is empty or malformed.
	ErrorInvalidRoleID = serviceerror.ServiceError{
		Code:             "ROL-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid role id",
		ErrorDescription: "The provided role id is invalid",
	}
	// ErrorInvalidRole is the error returned when the role payload fails validation.
	ErrorInvalidRole = serviceerror.ServiceError{
		Code:             "ROL-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid role",
		ErrorDescription: "The role payload failed validation",
	}
	// ErrorRoleAlreadyExists is the error returned when the role name is taken.
	ErrorRoleAlreadyExists = serviceerror.ServiceError{
		Code:             "ROL-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Role already exists",
		ErrorDescription: "A role with the same name already exists",
	}
	// ErrorSchemeNotFoundForRole is the error returned when the referenced permission scheme does not exist.
	ErrorSchemeNotFoundForRole = serviceerror.ServiceError{
		Code:             "ROL-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Permission scheme not found",
		ErrorDescription: "The permission scheme referenced by the role does not exist",
	}
	// ErrorUserNotFoundForAssignment is the error returned when the user to assign does not exist.
	ErrorUserNotFoundForAssignment = serviceerror.ServiceError{
		Code:             "ROL-1006",
		Type:             serviceerror.ClientErrorType,
		Error:            "User not found",
		ErrorDescription: "The user with the specified id does not exist",
	}
	// ErrorUserAlreadyAssigned is the error returned when the user already holds the role.
	ErrorUserAlreadyAssigned = serviceerror.ServiceError{
		Code:             "ROL-1007",
		Type:             serviceerror.ClientErrorType,
		Error:            "User already assigned",
		ErrorDescription: "The user is already assigned to the role",
	}
	// ErrorUserNotAssigned is the error returned when removing a user that does not hold the role.
	ErrorUserNotAssigned = serviceerror.ServiceError{
		Code:             "ROL-1008",
		Type:             serviceerror.ClientErrorType,
		Error:            "User not assigned",
		ErrorDescription: "The user is not assigned to the role",
	}
	// ErrorInvalidRequestFormat is the error returned when the request body cannot be parsed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "ROL-1009",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
	// ErrorInvalidPaginationParams is the error returned for invalid pagination parameters.
	ErrorInvalidPaginationParams = serviceerror.ServiceError{
		Code:             "ROL-1010",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid pagination parameters",
		ErrorDescription: "The provided page or per_page value is invalid",
	}
	// ErrorRoleInUse is the error returned when deleting a role that users are assigned to.
	ErrorRoleInUse = serviceerror.ServiceError{
		Code:             "ROL-1011",
		Type:             serviceerror.ClientErrorType,
		Error:            "Role in use",
		ErrorDescription: "The role cannot be deleted while users are assigned to it",
	}
)

// Server errors for role management operations.
var (
	// ErrorInternalServerError is the generic server side error.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "ROL-5001",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
