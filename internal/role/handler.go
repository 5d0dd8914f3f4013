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
	"net/http"
	"strings"

	"github.com/lattice-hq/lattice/internal/system/apiresponse"
	"github.com/lattice-hq/lattice/internal/system/error/apierror"
	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
	"github.com/lattice-hq/lattice/internal/system/log"
	sysutils "github.com/lattice-hq/lattice/internal/system/utils"
)

// roleHandler is the handler for role management operations.
type roleHandler struct {
	service RoleServiceInterface
}

// newRoleHandler creates a new instance of the role handler.
func newRoleHandler(service RoleServiceInterface) *roleHandler {
	return &roleHandler{
		service: service,
	}
}

// HandleRolePostRequest handles the create role request.
func (h *roleHandler) HandleRolePostRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[roleRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	role := &Role{
		Name:        strings.TrimSpace(request.Name),
		Description: strings.TrimSpace(request.Description),
		SchemeID:    strings.TrimSpace(request.SchemeID),
	}
	createdRole, svcErr := h.service.CreateRole(role)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusCreated, "Role created", createdRole, nil)
}

// HandleRoleListRequest handles the list roles request.
func (h *roleHandler) HandleRoleListRequest(w http.ResponseWriter, r *http.Request) {
	params, err := sysutils.ParsePageParams(r.URL.Query())
	if err != nil {
		writeServiceErrorResponse(w, ErrorInvalidPaginationParams.WithDescription(err.Error()))
		return
	}

	listResponse, svcErr := h.service.GetRoleList(params)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	meta := apiresponse.NewMeta(listResponse.Total, params.Page, params.PerPage)
	apiresponse.WriteSuccess(w, http.StatusOK, "Roles retrieved", listResponse.Roles, meta)
}

// HandleRoleGetRequest handles the get role request.
func (h *roleHandler) HandleRoleGetRequest(w http.ResponseWriter, r *http.Request) {
	role, svcErr := h.service.GetRole(r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "Role retrieved", role, nil)
}

// HandleRolePutRequest handles the update role request.
func (h *roleHandler) HandleRolePutRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[roleRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	role := &Role{
		Name:        strings.TrimSpace(request.Name),
		Description: strings.TrimSpace(request.Description),
		SchemeID:    strings.TrimSpace(request.SchemeID),
	}
	updatedRole, svcErr := h.service.UpdateRole(r.PathValue("id"), role)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "Role updated", updatedRole, nil)
}

// HandleRoleDeleteRequest handles the delete role request.
func (h *roleHandler) HandleRoleDeleteRequest(w http.ResponseWriter, r *http.Request) {
	svcErr := h.service.DeleteRole(r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleRoleUsersGetRequest handles the list role users request.
func (h *roleHandler) HandleRoleUsersGetRequest(w http.ResponseWriter, r *http.Request) {
	usersResponse, svcErr := h.service.GetRoleUsers(r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "Role users retrieved", usersResponse, nil)
}

// HandleRoleAssignRequest handles the assign user to role request.
func (h *roleHandler) HandleRoleAssignRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[assignRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	svcErr := h.service.AssignUser(r.PathValue("id"), strings.TrimSpace(request.UserID))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "User assigned to role", nil, nil)
}

// HandleRoleUnassignRequest handles the remove user from role request.
func (h *roleHandler) HandleRoleUnassignRequest(w http.ResponseWriter, r *http.Request) {
	svcErr := h.service.UnassignUser(r.PathValue("id"), r.PathValue("userId"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleUserRolesGetRequest handles the list user roles request.
func (h *roleHandler) HandleUserRolesGetRequest(w http.ResponseWriter, r *http.Request) {
	rolesResponse, svcErr := h.service.GetUserRoles(r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "User roles retrieved", rolesResponse, nil)
}

// writeServiceErrorResponse writes the appropriate error envelope for the service error.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = getClientErrorStatusCode(svcErr.Code)
	}

	if svcErr.Type == serviceerror.ServerErrorType {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, "RoleHandler")).
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
	case ErrorRoleNotFound.Code, ErrorSchemeNotFoundForRole.Code,
		ErrorUserNotFoundForAssignment.Code, ErrorUserNotAssigned.Code:
		return http.StatusNotFound
	case ErrorRoleAlreadyExists.Code, ErrorUserAlreadyAssigned.Code, ErrorRoleInUse.Code:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
