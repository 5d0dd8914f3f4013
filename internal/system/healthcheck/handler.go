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

package healthcheck

import (
	"encoding/json"
	"net/http"

	serverconst "github.com/lattice-hq/lattice/internal/system/constants"
	"github.com/lattice-hq/lattice/internal/system/log"
)

const handlerLoggerComponentName = "HealthCheckHandler"

// healthCheckHandler is the handler for health check endpoints.
type healthCheckHandler struct {
	healthCheckService HealthCheckServiceInterface
}

// newHealthCheckHandler creates a new instance of healthCheckHandler.
func newHealthCheckHandler(service HealthCheckServiceInterface) *healthCheckHandler {
	return &healthCheckHandler{
		healthCheckService: service,
	}
}

// Initialize initializes the health check service and registers its routes.
func Initialize(mux *http.ServeMux) HealthCheckServiceInterface {
	service := newHealthCheckService()
	handler := newHealthCheckHandler(service)

	mux.HandleFunc("GET /health/liveness", handler.HandleLivenessRequest)
	mux.HandleFunc("GET /health/readiness", handler.HandleReadinessRequest)

	return service
}

// HandleLivenessRequest handles the liveness probe request.
func (h *healthCheckHandler) HandleLivenessRequest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(map[string]ServerStatus{"status": StatusUp}); err != nil {
		log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName)).
			Error("Error encoding response", log.Error(err))
	}
}

// HandleReadinessRequest handles the readiness probe request.
func (h *healthCheckHandler) HandleReadinessRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, handlerLoggerComponentName))

	readiness := h.healthCheckService.CheckReadiness()

	statusCode := http.StatusOK
	if readiness.Status == StatusDown {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(readiness); err != nil {
		logger.Error("Error encoding response", log.Error(err))
	}
}
