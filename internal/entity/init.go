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

	"github.com/lattice-hq/lattice/internal/entitydef"
	"github.com/lattice-hq/lattice/internal/system/middleware"
)

// Initialize initializes the entity record service and registers its routes.
func Initialize(mux *http.ServeMux, defService entitydef.EntityDefServiceInterface) EntityServiceInterface {
	service := NewEntityService(defService)
	handler := newEntityHandler(service)
	registerRoutes(mux, handler)
	return service
}

// registerRoutes registers the routes for entity record operations.
func registerRoutes(mux *http.ServeMux, handler *entityHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /api/v1/entities/{definition}",
		handler.HandleRecordPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /api/v1/entities/{definition}",
		handler.HandleRecordListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /api/v1/entities/{definition}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /api/v1/entities/{definition}/{id}",
		handler.HandleRecordGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /api/v1/entities/{definition}/{id}",
		handler.HandleRecordPutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /api/v1/entities/{definition}/{id}",
		handler.HandleRecordDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /api/v1/entities/{definition}/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
