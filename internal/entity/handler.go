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
	"net/http"

	"github.com/lattice-hq/lattice/internal/system/apiresponse"
	"github.com/lattice-hq/lattice/internal/system/error/apierror"
	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
	"github.com/lattice-hq/lattice/internal/system/log"
	sysutils "github.com/lattice-hq/lattice/internal/system/utils"
)

// entityHandler is the handler for entity record operations.
type entityHandler struct {
	service EntityServiceInterface
}

// newEntityHandler creates a new instance of the entity record handler.
func newEntityHandler(service EntityServiceInterface) *entityHandler {
	return &entityHandler{
		service: service,
	}
}

// HandleRecordPostRequest handles the create record request.
func (h *entityHandler) HandleRecordPostRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[entityRecordRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	record, svcErr := h.service.CreateRecord(r.PathValue("definition"), request.Attributes)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusCreated, "Entity record created", record, nil)
}

// HandleRecordListRequest handles the list records request.
func (h *entityHandler) HandleRecordListRequest(w http.ResponseWriter, r *http.Request) {
	params, err := sysutils.ParsePageParams(r.URL.Query())
	if err != nil {
		writeServiceErrorResponse(w, ErrorInvalidPaginationParams.WithDescription(err.Error()))
		return
	}

	filter, err := ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidFilter)
		return
	}

	listResponse, svcErr := h.service.GetRecordList(r.PathValue("definition"), filter, params)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	meta := apiresponse.NewMeta(listResponse.Total, params.Page, params.PerPage)
	apiresponse.WriteSuccess(w, http.StatusOK, "Entity records retrieved", listResponse.Records, meta)
}

// HandleRecordGetRequest handles the get record request.
func (h *entityHandler) HandleRecordGetRequest(w http.ResponseWriter, r *http.Request) {
	record, svcErr := h.service.GetRecord(r.PathValue("definition"), r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "Entity record retrieved", record, nil)
}

// HandleRecordPutRequest handles the update record request.
func (h *entityHandler) HandleRecordPutRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[entityRecordRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	record, svcErr := h.service.UpdateRecord(r.PathValue("definition"), r.PathValue("id"), request.Attributes)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "Entity record updated", record, nil)
}

// HandleRecordDeleteRequest handles the delete record request.
func (h *entityHandler) HandleRecordDeleteRequest(w http.ResponseWriter, r *http.Request) {
	svcErr := h.service.DeleteRecord(r.PathValue("definition"), r.PathValue("id"))
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
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityHandler")).
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
	case ErrorRecordNotFound.Code, ErrorDefinitionNotFound.Code:
		return http.StatusNotFound
	case ErrorUniqueAttributeConflict.Code:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
