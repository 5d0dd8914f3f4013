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

	"github.com/lattice-hq/lattice/internal/permission"
	"github.com/lattice-hq/lattice/internal/system/middleware"
	"github.com/lattice-hq/lattice/internal/user"
)

// Initialize initializes the role service and registers its routes.
func Initialize(
	mux *http.ServeMux, userService user.UserServiceInterface, schemeService permission.SchemeServiceInterface,
) RoleServiceInterface {
	service := NewRoleService(userService, schemeService)
	handler := newRoleHandler(service)
	registerRoutes(mux, handler)
	return service
}

// registerRoutes registers the routes for role operations.
func registerRoutes(mux *http.ServeMux, handler *roleHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /admin/api/v1/roles",
		handler.HandleRolePostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /admin/api/v1/roles",
		handler.HandleRoleListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /admin/api/v1/roles",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /admin/api/v1/roles/{id}",
		handler.HandleRoleGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /admin/api/v1/roles/{id}",
		handler.HandleRolePutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /admin/api/v1/roles/{id}",
		handler.HandleRoleDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /admin/api/v1/roles/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))

	opts3 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /admin/api/v1/roles/{id}/users",
		handler.HandleRoleUsersGetRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("POST /admin/api/v1/roles/{id}/users",
		handler.HandleRoleAssignRequest, opts3))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /admin/api/v1/roles/{id}/users",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts3))

	opts4 := middleware.CORSOptions{
		AllowedMethods:   "DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("DELETE /admin/api/v1/roles/{id}/users/{userId}",
		handler.HandleRoleUnassignRequest, opts4))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /admin/api/v1/roles/{id}/users/{userId}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts4))

	opts5 := middleware.CORSOptions{
		AllowedMethods:   "GET",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /admin/api/v1/users/{id}/roles",
		handler.HandleUserRolesGetRequest, opts5))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /admin/api/v1/users/{id}/roles",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts5))
}
