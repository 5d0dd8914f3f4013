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

// Package apiresponse provides the uniform response envelope for the admin and runtime APIs.
package apiresponse

import (
	"encoding/json"
	"net/http"

	serverconst "github.com/lattice-hq/lattice/internal/system/constants"
	"github.com/lattice-hq/lattice/internal/system/error/apierror"
	"github.com/lattice-hq/lattice/internal/system/log"
)

const (
	// StatusSuccess is the envelope status for successful responses.
	StatusSuccess = "success"
	// StatusError is the envelope status for error responses.
	StatusError = "error"
)

// Meta carries pagination metadata for list responses.
type Meta struct {
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	PerPage     int  `json:"per_page"`
	TotalPages  int  `json:"total_pages"`
	HasPrevious bool `json:"has_previous"`
	HasNext     bool `json:"has_next"`
}

// Envelope is the uniform response shape returned by every API endpoint.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

// NewMeta builds pagination metadata from the total item count and page parameters.
func NewMeta(total, page, perPage int) *Meta {
	totalPages := 0
	if perPage > 0 {
		totalPages = (total + perPage - 1) / perPage
	}
	return &Meta{
		Total:       total,
		Page:        page,
		PerPage:     perPage,
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}

// WriteSuccess writes a success envelope with the given status code, message and payload.
func WriteSuccess(w http.ResponseWriter, statusCode int, message string, data any, meta *Meta) {
	write(w, statusCode, Envelope{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

// WriteError writes an error envelope with the given status code and error payload.
func WriteError(w http.ResponseWriter, statusCode int, errResp apierror.ErrorResponse) {
	write(w, statusCode, Envelope{
		Status:  StatusError,
		Message: errResp.Message,
		Data:    errResp,
	})
}

// write encodes the envelope onto the response writer.
func write(w http.ResponseWriter, statusCode int, envelope Envelope) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		log.GetLogger().Error("Failed to encode response envelope", log.Error(err))
	}
}
