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

package workflow

import (
	"net/http"

	"github.com/lattice-hq/lattice/internal/system/apiresponse"
	"github.com/lattice-hq/lattice/internal/system/error/apierror"
	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
	"github.com/lattice-hq/lattice/internal/system/log"
	sysutils "github.com/lattice-hq/lattice/internal/system/utils"
)

// workflowHandler is the handler for workflow management operations.
type workflowHandler struct {
	service WorkflowServiceInterface
}

// newWorkflowHandler creates a new instance of the workflow handler.
func newWorkflowHandler(service WorkflowServiceInterface) *workflowHandler {
	return &workflowHandler{
		service: service,
	}
}

// HandleWorkflowPostRequest handles the create workflow request.
func (h *workflowHandler) HandleWorkflowPostRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[workflowRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	createdWorkflow, svcErr := h.service.CreateWorkflow(request.Name, request.Description, request.Steps)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusCreated, "Workflow created", createdWorkflow, nil)
}

// HandleWorkflowListRequest handles the list workflows request.
func (h *workflowHandler) HandleWorkflowListRequest(w http.ResponseWriter, r *http.Request) {
	params, err := sysutils.ParsePageParams(r.URL.Query())
	if err != nil {
		writeServiceErrorResponse(w, ErrorInvalidPaginationParams.WithDescription(err.Error()))
		return
	}

	listResponse, svcErr := h.service.GetWorkflowList(params)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	meta := apiresponse.NewMeta(listResponse.Total, params.Page, params.PerPage)
	apiresponse.WriteSuccess(w, http.StatusOK, "Workflows retrieved", listResponse.Workflows, meta)
}

// HandleWorkflowGetRequest handles the get workflow request.
func (h *workflowHandler) HandleWorkflowGetRequest(w http.ResponseWriter, r *http.Request) {
	wf, svcErr := h.service.GetWorkflow(r.PathValue("id"))
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "Workflow retrieved", wf, nil)
}

// HandleWorkflowPutRequest handles the update workflow request.
func (h *workflowHandler) HandleWorkflowPutRequest(w http.ResponseWriter, r *http.Request) {
	request, err := sysutils.DecodeJSONBody[workflowRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	updatedWorkflow, svcErr := h.service.UpdateWorkflow(
		r.PathValue("id"), request.Name, request.Description, request.Steps)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	apiresponse.WriteSuccess(w, http.StatusOK, "Workflow updated", updatedWorkflow, nil)
}

// HandleWorkflowDeleteRequest handles the delete workflow request.
func (h *workflowHandler) HandleWorkflowDeleteRequest(w http.ResponseWriter, r *http.Request) {
	svcErr := h.service.DeleteWorkflow(r.PathValue("id"))
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
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, "WorkflowHandler")).
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
	case ErrorWorkflowNotFound.Code:
		return http.StatusNotFound
	case ErrorWorkflowAlreadyExists.Code:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
