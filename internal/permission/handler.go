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
	"net/http"
	"strings"

	"github.com/lattice-hq/lattice/internal/system/apiresponse"
	"github.com/lattice-hq/lattice/internal/system/error/apierror"
	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
	"github.com/lattice-hq/lattice/internal/system/log"
	sysutils "github.com/lattice-hq/lattice/internal/system/utils"
)

// schemeHandler is the handler for permission scheme management operations.
type schemeHandler struct {
	service SchemeServiceInterface
}

// newSchemeHandler creates a new instance of the permission scheme handler.
func newSchemeHandler(service SchemeServiceInterface) *schemeHandler {
	return &schemeHandler{
		service: service,
	}
}

// HandleSchemePostRequest handles the create permission scheme request.
func (h *schemeHandler) HandleSchemePostRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[schemeRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	scheme := &PermissionScheme{
		Name:        strings.TrimSpace(request.Name),
		Description: strings.TrimSpace(request.Description),
		Rules:       request.Rules,
	}
	createdScheme, svcErr := h.service.CreatePermissionScheme(scheme)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusCreated, "Permission scheme created", createdScheme, nil)
}

// HandleSchemeListRequest handles the list permission schemes request.
func (h *schemeHandler) HandleSchemeListRequest(w http.ResponseWriter, r *http.Request) {
	params, err := sysutils.ParsePageParams(r.URL.Query())
	if err != nil {
		writeServiceErrorResponse(w, ErrorInvalidPaginationParams.WithDescription(err.Error()))
		return
	}

	listResponse, svcErr := h.service.GetPermissionSchemeList(params)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	meta := apiresponse.NewMeta(listResponse.Total, params.Page, params.PerPage)
	apiresponse.WriteSuccess(w, http.StatusOK, "Permission schemes retrieved", listResponse.Schemes, meta)
}

// HandleSchemeGetRequest handles the get permission scheme request.
func (h *schemeHandler) HandleSchemeGetRequest(w http.ResponseWriter, r *http.Request) {
	scheme, svcErr := h.service.GetPermissionScheme(r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "Permission scheme retrieved", scheme, nil)
}

// HandleSchemePutRequest handles the update permission scheme request.
func (h *schemeHandler) HandleSchemePutRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[schemeRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	scheme := &PermissionScheme{
		Name:        strings.TrimSpace(request.Name),
		Description: strings.TrimSpace(request.Description),
		Rules:       request.Rules,
	}
	updatedScheme, svcErr := h.service.UpdatePermissionScheme(r.PathValue("id"), scheme)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "Permission scheme updated", updatedScheme, nil)
}

// HandleSchemeDeleteRequest handles the delete permission scheme request.
func (h *schemeHandler) HandleSchemeDeleteRequest(w http.ResponseWriter, r *http.Request) {
	svcErr := h.service.DeletePermissionScheme(r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleSchemeEvaluateRequest handles the access evaluation request.
func (h *schemeHandler) HandleSchemeEvaluateRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[evaluateRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	result, svcErr := h.service.EvaluateAccess(r.PathValue("id"),
		strings.TrimSpace(request.Resource), strings.TrimSpace(request.Action))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "Access evaluated", result, nil)
}

// writeServiceErrorResponse writes the appropriate error envelope for the service error.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = getClientErrorStatusCode(svcErr.Code)
	}

	if svcErr.Type == serviceerror.ServerErrorType {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, "SchemeHandler")).
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
	case ErrorSchemeNotFound.Code:
		return http.StatusNotFound
	case ErrorSchemeAlreadyExists.Code, ErrorSchemeInUse.Code:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
