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

package main

import (
	"net/http"

	"github.com/lattice-hq/lattice/internal/apikey"
	"github.com/lattice-hq/lattice/internal/entity"
	"github.com/lattice-hq/lattice/internal/entitydef"
	"github.com/lattice-hq/lattice/internal/permission"
	"github.com/lattice-hq/lattice/internal/role"
	"github.com/lattice-hq/lattice/internal/system/healthcheck"
	"github.com/lattice-hq/lattice/internal/user"
	"github.com/lattice-hq/lattice/internal/workflow"
)

// registerServices registers all the services with the provided HTTP multiplexer.
// Services that depend on another service receive it from the earlier
// initialization rather than constructing their own.
func registerServices(mux *http.ServeMux) {
	defService := entitydef.Initialize(mux)
	_ = entity.Initialize(mux, defService)
	_ = workflow.Initialize(mux, defService)

	userService := user.Initialize(mux)
	schemeService := permission.Initialize(mux)
	_ = role.Initialize(mux, userService, schemeService)

	_ = apikey.Initialize(mux)

	_ = healthcheck.Initialize(mux)
}
