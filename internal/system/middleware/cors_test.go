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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/lattice-hq/lattice/internal/system/config"
)

type CORSMiddlewareTestSuite struct {
	suite.Suite
}

func TestCORSMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(CORSMiddlewareTestSuite))
}

func (suite *CORSMiddlewareTestSuite) SetupTest() {
	config.ResetLatticeRuntime()
	err := config.InitializeLatticeRuntime("/tmp/lattice", &config.Config{
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"https://localhost:5173"},
		},
	})
	if err != nil {
		suite.T().Fatalf("Failed to initialize runtime config: %v", err)
	}
}

func (suite *CORSMiddlewareTestSuite) TearDownTest() {
	config.ResetLatticeRuntime()
}

func (suite *CORSMiddlewareTestSuite) invoke(origin string, opts CORSOptions) *httptest.ResponseRecorder {
	pattern, handler := WithCORS("GET /admin/api/v1/workflows", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, opts)
	assert.Equal(suite.T(), "GET /admin/api/v1/workflows", pattern)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/v1/workflows", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func (suite *CORSMiddlewareTestSuite) TestAllowedOriginGetsCORSHeaders() {
	rec := suite.invoke("https://localhost:5173", CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	})

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Equal(suite.T(), "https://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(suite.T(), "GET, POST", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(suite.T(), "Content-Type, Authorization", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(suite.T(), "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func (suite *CORSMiddlewareTestSuite) TestDisallowedOriginGetsNoCORSHeaders() {
	rec := suite.invoke("https://evil.example.com", CORSOptions{
		AllowedMethods: "GET, POST",
	})

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Empty(suite.T(), rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(suite.T(), rec.Header().Get("Access-Control-Allow-Methods"))
}

func (suite *CORSMiddlewareTestSuite) TestRequestWithoutOriginGetsNoCORSHeaders() {
	rec := suite.invoke("", CORSOptions{
		AllowedMethods: "GET, POST",
	})

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
	assert.Empty(suite.T(), rec.Header().Get("Access-Control-Allow-Origin"))
}

func (suite *CORSMiddlewareTestSuite) TestCredentialsHeaderOmittedWhenDisabled() {
	rec := suite.invoke("https://localhost:5173", CORSOptions{
		AllowedMethods: "GET",
	})

	assert.Empty(suite.T(), rec.Header().Get("Access-Control-Allow-Credentials"))
}
