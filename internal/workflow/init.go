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

	"github.com/lattice-hq/lattice/internal/entitydef"
	"github.com/lattice-hq/lattice/internal/system/middleware"
)

// Initialize initializes the workflow service and registers its routes.
func Initialize(mux *http.ServeMux, defService entitydef.EntityDefServiceInterface) WorkflowServiceInterface {
	service := NewWorkflowService(defService)
	handler := newWorkflowHandler(service)
	registerRoutes(mux, handler)
	return service
}

// registerRoutes registers the routes for workflow operations.
func registerRoutes(mux *http.ServeMux, handler *workflowHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /admin/api/v1/workflows",
		handler.HandleWorkflowPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /admin/api/v1/workflows",
		handler.HandleWorkflowListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /admin/api/v1/workflows",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /admin/api/v1/workflows/{id}",
		handler.HandleWorkflowGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /admin/api/v1/workflows/{id}",
		handler.HandleWorkflowPutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /admin/api/v1/workflows/{id}",
		handler.HandleWorkflowDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /admin/api/v1/workflows/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
