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

	"github.com/lattice-hq/lattice/internal/system/middleware"
)

// Initialize initializes the entity definition service and registers its routes.
func Initialize(mux *http.ServeMux) EntityDefServiceInterface {
	service := NewEntityDefService()
	handler := newEntityDefHandler(service)
	registerRoutes(mux, handler)
	return service
}

// registerRoutes registers the routes for entity definition operations.
func registerRoutes(mux *http.ServeMux, handler *entityDefHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /admin/api/v1/entity-definitions",
		handler.HandleEntityDefPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /admin/api/v1/entity-definitions",
		handler.HandleEntityDefListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /admin/api/v1/entity-definitions",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /admin/api/v1/entity-definitions/{id}",
		handler.HandleEntityDefGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /admin/api/v1/entity-definitions/{id}",
		handler.HandleEntityDefPutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /admin/api/v1/entity-definitions/{id}",
		handler.HandleEntityDefDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /admin/api/v1/entity-definitions/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
