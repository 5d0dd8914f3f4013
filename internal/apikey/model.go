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
	"time"

	"github.com/lattice-hq/lattice/internal/system/crypto/hash"
)

// APIKey holds the metadata of an issued API key. The key secret itself is
// never stored, only its salted hash.
type APIKey struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Prefix    string     `json:"prefix"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Revoked   bool       `json:"revoked"`

	credential *hash.Credential
}

// APIKeyListResponse is the paginated list of API keys.
type APIKeyListResponse struct {
	Total int      `json:"total"`
	Keys  []APIKey `json:"keys"`
}

// CreatedAPIKey is returned once on key creation and carries the full key value.
type CreatedAPIKey struct {
	APIKey
	Key string `json:"key"`
}

// apiKeyRequest is the create request payload. A zero validity falls back to
// the configured default; a negative validity issues a key that never expires.
type apiKeyRequest struct {
	Name            string `json:"name"`
	ValiditySeconds int64  `json:"validity_seconds,omitempty"`
}

// verifyRequest is the key verification request payload.
type verifyRequest struct {
	Key string `json:"key"`
}

// VerificationResult is the outcome of a key verification.
type VerificationResult struct {
	Valid bool   `json:"valid"`
	KeyID string `json:"key_id,omitempty"`
	Name  string `json:"name,omitempty"`
}
