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

// Package healthcheck provides liveness and readiness endpoints for the server.
package healthcheck

import (
	dbmodel "github.com/lattice-hq/lattice/internal/system/database/model"
	"github.com/lattice-hq/lattice/internal/system/database/provider"
	"github.com/lattice-hq/lattice/internal/system/log"
)

const serviceLoggerComponentName = "HealthCheckService"

// queryPing is the query used to probe data source connectivity.
var queryPing = dbmodel.DBQuery{
	ID:    "HCQ-HEALTH-01",
	Query: "SELECT 1 as alive",
}

// ServerStatus represents the overall health status of the server.
type ServerStatus string

const (
	// StatusUp indicates a healthy server or data source.
	StatusUp ServerStatus = "UP"
	// StatusDown indicates an unhealthy server or data source.
	StatusDown ServerStatus = "DOWN"
)

// DataSourceStatus represents the health status of a single data source.
type DataSourceStatus struct {
	Name   string       `json:"name"`
	Status ServerStatus `json:"status"`
}

// ReadinessStatus represents the readiness response payload.
type ReadinessStatus struct {
	Status      ServerStatus       `json:"status"`
	DataSources []DataSourceStatus `json:"data_sources"`
}

// HealthCheckServiceInterface defines the interface for health check operations.
type HealthCheckServiceInterface interface {
	CheckReadiness() ReadinessStatus
}

// healthCheckService is the default implementation of HealthCheckServiceInterface.
type healthCheckService struct {
	dbProvider provider.DBProviderInterface
}

// newHealthCheckService creates a new health check service instance.
func newHealthCheckService() HealthCheckServiceInterface {
	return &healthCheckService{
		dbProvider: provider.GetDBProvider(),
	}
}

// CheckReadiness probes the configured data sources and reports the aggregate status.
func (s *healthCheckService) CheckReadiness() ReadinessStatus {
	readiness := ReadinessStatus{
		Status: StatusUp,
		DataSources: []DataSourceStatus{
			{Name: "identity", Status: s.checkDataSource("identity")},
			{Name: "runtime", Status: s.checkDataSource("runtime")},
		},
	}

	for _, ds := range readiness.DataSources {
		if ds.Status == StatusDown {
			readiness.Status = StatusDown
			break
		}
	}

	return readiness
}

// checkDataSource probes a single data source by name.
func (s *healthCheckService) checkDataSource(name string) ServerStatus {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, serviceLoggerComponentName))

	dbClient, err := s.dbProvider.GetDBClient(name)
	if err != nil {
		logger.Error("Failed to get database client", log.String("dataSource", name), log.Error(err))
		return StatusDown
	}

	if _, err := dbClient.Query(queryPing); err != nil {
		logger.Error("Data source ping failed", log.String("dataSource", name), log.Error(err))
		return StatusDown
	}

	return StatusUp
}
