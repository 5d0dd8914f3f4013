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

	"github.com/lattice-hq/lattice/internal/system/middleware"
)

// Initialize initializes the API key service and registers its routes.
func Initialize(mux *http.ServeMux) APIKeyServiceInterface {
	service := NewAPIKeyService()
	handler := newAPIKeyHandler(service)
	registerRoutes(mux, handler)
	return service
}

// registerRoutes registers the routes for API key operations.
func registerRoutes(mux *http.ServeMux, handler *apiKeyHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /admin/api/v1/api-keys",
		handler.HandleAPIKeyPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /admin/api/v1/api-keys",
		handler.HandleAPIKeyListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /admin/api/v1/api-keys",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /admin/api/v1/api-keys/{id}",
		handler.HandleAPIKeyGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /admin/api/v1/api-keys/{id}",
		handler.HandleAPIKeyDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /admin/api/v1/api-keys/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))

	opts3 := middleware.CORSOptions{
		AllowedMethods:   "POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /admin/api/v1/api-keys/{id}/revoke",
		handler.HandleAPIKeyRevokeRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /admin/api/v1/api-keys/{id}/revoke",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts3))

	mux.HandleFunc(middleware.WithCORS("POST /admin/api/v1/api-keys/verify",
		handler.HandleAPIKeyVerifyRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /admin/api/v1/api-keys/verify",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts3))
}
