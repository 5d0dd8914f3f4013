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
	"net/http"
	"strings"

	"github.com/lattice-hq/lattice/internal/system/apiresponse"
	"github.com/lattice-hq/lattice/internal/system/error/apierror"
	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
	"github.com/lattice-hq/lattice/internal/system/log"
	sysutils "github.com/lattice-hq/lattice/internal/system/utils"
)

// entityDefHandler is the handler for entity definition management operations.
type entityDefHandler struct {
	service EntityDefServiceInterface
}

// newEntityDefHandler creates a new instance of the entity definition handler.
func newEntityDefHandler(service EntityDefServiceInterface) *entityDefHandler {
	return &entityDefHandler{
		service: service,
	}
}

// HandleEntityDefPostRequest handles the create entity definition request.
func (h *entityDefHandler) HandleEntityDefPostRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[entityDefRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	def := &EntityDefinition{
		Name:        strings.TrimSpace(request.Name),
		Description: strings.TrimSpace(request.Description),
		Fields:      request.Fields,
	}
	createdDef, svcErr := h.service.CreateEntityDefinition(def)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusCreated, "Entity definition created", createdDef, nil)
}

// HandleEntityDefListRequest handles the list entity definitions request.
func (h *entityDefHandler) HandleEntityDefListRequest(w http.ResponseWriter, r *http.Request) {
	params, err := sysutils.ParsePageParams(r.URL.Query())
	if err != nil {
		writeServiceErrorResponse(w, ErrorInvalidPaginationParams.WithDescription(err.Error()))
		return
	}

	listResponse, svcErr := h.service.GetEntityDefinitionList(params)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	meta := apiresponse.NewMeta(listResponse.Total, params.Page, params.PerPage)
	apiresponse.WriteSuccess(w, http.StatusOK, "Entity definitions retrieved", listResponse.Definitions, meta)
}

// HandleEntityDefGetRequest handles the get entity definition request.
func (h *entityDefHandler) HandleEntityDefGetRequest(w http.ResponseWriter, r *http.Request) {
	def, svcErr := h.service.GetEntityDefinition(r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "Entity definition retrieved", def, nil)
}

// HandleEntityDefPutRequest handles the update entity definition request.
func (h *entityDefHandler) HandleEntityDefPutRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[entityDefRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	def := &EntityDefinition{
		Name:        strings.TrimSpace(request.Name),
		Description: strings.TrimSpace(request.Description),
		Fields:      request.Fields,
	}
	updatedDef, svcErr := h.service.UpdateEntityDefinition(r.PathValue("id"), def)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "Entity definition updated", updatedDef, nil)
}

// HandleEntityDefDeleteRequest handles the delete entity definition request.
func (h *entityDefHandler) HandleEntityDefDeleteRequest(w http.ResponseWriter, r *http.Request) {
	svcErr := h.service.DeleteEntityDefinition(r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeServiceErrorResponse writes the appropriate error envelope for the service error.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = getClientErrorStatusCode(svcErr.Code)
	}

	if svcErr.Type == serviceerror.ServerErrorType {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityDefHandler")).
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
	case ErrorEntityDefinitionNotFound.Code:
		return http.StatusNotFound
	case ErrorEntityDefinitionAlreadyExists.Code, ErrorEntityDefinitionInUse.Code:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
