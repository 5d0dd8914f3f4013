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
	"net/http"
	"strings"

	"github.com/lattice-hq/lattice/internal/system/apiresponse"
	"github.com/lattice-hq/lattice/internal/system/error/apierror"
	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
	"github.com/lattice-hq/lattice/internal/system/log"
	sysutils "github.com/lattice-hq/lattice/internal/system/utils"
)

// userHandler is the handler for user management operations.
type userHandler struct {
	service UserServiceInterface
}

// newUserHandler creates a new instance of the user handler.
func newUserHandler(service UserServiceInterface) *userHandler {
	return &userHandler{
		service: service,
	}
}

// HandleUserPostRequest handles the create user request.
func (h *userHandler) HandleUserPostRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[userRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	user, password := buildUserFromRequest(request)
	createdUser, svcErr := h.service.CreateUser(user, password)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusCreated, "User created", createdUser, nil)
}

// HandleUserListRequest handles the list users request.
func (h *userHandler) HandleUserListRequest(w http.ResponseWriter, r *http.Request) {
	params, err := sysutils.ParsePageParams(r.URL.Query())
	if err != nil {
		writeServiceErrorResponse(w, ErrorInvalidPaginationParams.WithDescription(err.Error()))
		return
	}

	listResponse, svcErr := h.service.GetUserList(params)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	meta := apiresponse.NewMeta(listResponse.Total, params.Page, params.PerPage)
	apiresponse.WriteSuccess(w, http.StatusOK, "Users retrieved", listResponse.Users, meta)
}

// HandleUserGetRequest handles the get user request.
func (h *userHandler) HandleUserGetRequest(w http.ResponseWriter, r *http.Request) {
	user, svcErr := h.service.GetUser(r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "User retrieved", user, nil)
}

// HandleUserPutRequest handles the update user request.
func (h *userHandler) HandleUserPutRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[userRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	user, password := buildUserFromRequest(request)
	updatedUser, svcErr := h.service.UpdateUser(r.PathValue("id"), user, password)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "User updated", updatedUser, nil)
}

// HandleUserDeleteRequest handles the delete user request.
func (h *userHandler) HandleUserDeleteRequest(w http.ResponseWriter, r *http.Request) {
	svcErr := h.service.DeleteUser(r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// buildUserFromRequest maps the request payload onto a user, extracting the
// plaintext password for separate handling.
func buildUserFromRequest(request *userRequest) (*User, string) {
	active := true
	if request.Active != nil {
		active = *request.Active
	}
	return &User{
		Username:  strings.TrimSpace(request.Username),
		Email:     strings.TrimSpace(request.Email),
		FirstName: strings.TrimSpace(request.FirstName),
		LastName:  strings.TrimSpace(request.LastName),
		Active:    active,
	}, request.Password
}

// writeServiceErrorResponse writes the appropriate error envelope for the service error.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = getClientErrorStatusCode(svcErr.Code)
	}

	if svcErr.Type == serviceerror.ServerErrorType {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, "UserHandler")).
			Error("Returning server error response", log.String("code", svcErr.Code))
	}

	apiresponse.WriteError(w, statusCode, apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
		Violations:  svcErr.Violations,
	})
}

// getClientErrorStatusCode returns the appropriate HTTP status code for client errors.
func getClientErrorStatusCode(errorCode string) int {
	switch errorCode {
	case ErrorUserNotFound.Code:
		return http.StatusNotFound
	case ErrorUsernameAlreadyExists.Code, ErrorEmailAlreadyExists.Code:
		return http.StatusConflict
	case ErrorInvalidCredentials.Code:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}
