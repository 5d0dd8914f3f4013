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
	"net/http"

	"github.com/lattice-hq/lattice/internal/system/apiresponse"
	"github.com/lattice-hq/lattice/internal/system/error/apierror"
	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
	"github.com/lattice-hq/lattice/internal/system/log"
	sysutils "github.com/lattice-hq/lattice/internal/system/utils"
)

// apiKeyHandler is the handler for API key management operations.
type apiKeyHandler struct {
	service APIKeyServiceInterface
}

// newAPIKeyHandler creates a new instance of the API key handler.
func newAPIKeyHandler(service APIKeyServiceInterface) *apiKeyHandler {
	return &apiKeyHandler{
		service: service,
	}
}

// HandleAPIKeyPostRequest handles the create API key request.
func (h *apiKeyHandler) HandleAPIKeyPostRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[apiKeyRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	createdKey, svcErr := h.service.CreateAPIKey(request.Name, request.ValiditySeconds)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusCreated, "API key created", createdKey, nil)
}

// HandleAPIKeyListRequest handles the list API keys request.
func (h *apiKeyHandler) HandleAPIKeyListRequest(w http.ResponseWriter, r *http.Request) {
	params, err := sysutils.ParsePageParams(r.URL.Query())
	if err != nil {
		writeServiceErrorResponse(w, ErrorInvalidPaginationParams.WithDescription(err.Error()))
		return
	}

	listResponse, svcErr := h.service.GetAPIKeyList(params)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	meta := apiresponse.NewMeta(listResponse.Total, params.Page, params.PerPage)
	apiresponse.WriteSuccess(w, http.StatusOK, "API keys retrieved", listResponse.Keys, meta)
}

// HandleAPIKeyGetRequest handles the get API key request.
func (h *apiKeyHandler) HandleAPIKeyGetRequest(w http.ResponseWriter, r *http.Request) {
	key, svcErr := h.service.GetAPIKey(r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "API key retrieved", key, nil)
}

// HandleAPIKeyRevokeRequest handles the revoke API key request.
func (h *apiKeyHandler) HandleAPIKeyRevokeRequest(w http.ResponseWriter, r *http.Request) {
	svcErr := h.service.RevokeAPIKey(r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "API key revoked", nil, nil)
}

// HandleAPIKeyDeleteRequest handles the delete API key request.
func (h *apiKeyHandler) HandleAPIKeyDeleteRequest(w http.ResponseWriter, r *http.Request) {
	svcErr := h.service.DeleteAPIKey(r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleAPIKeyVerifyRequest handles the verify API key request.
func (h *apiKeyHandler) HandleAPIKeyVerifyRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[verifyRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	result, svcErr := h.service.VerifyKey(request.Key)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "API key verified", result, nil)
}

// writeServiceErrorResponse writes the appropriate error envelope for the service error.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	statusCode := http.StatusInternalServerError
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = getClientErrorStatusCode(svcErr.Code)
	}

	if svcErr.Type == serviceerror.ServerErrorType {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, "APIKeyHandler")).
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
	case ErrorAPIKeyNotFound.Code:
		return http.StatusNotFound
	case ErrorAPIKeyAlreadyRevoked.Code:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
