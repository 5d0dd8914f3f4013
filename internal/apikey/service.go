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

// Package apikey handles the API key issuance and verification operations.
package apikey

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lattice-hq/lattice/internal/system/config"
	"github.com/lattice-hq/lattice/internal/system/crypto/hash"
	"github.com/lattice-hq/lattice/internal/system/error/serviceerror"
	"github.com/lattice-hq/lattice/internal/system/log"
	"github.com/lattice-hq/lattice/internal/system/utils"
)

const (
	defaultKeyPrefix        = "lk"
	defaultSecretByteLength = 32
	prefixByteLength        = 4
	maxKeyNameLength        = 100
)

// APIKeyServiceInterface defines the interface for the API key service.
type APIKeyServiceInterface interface {
	CreateAPIKey(name string, validitySeconds int64) (*CreatedAPIKey, *serviceerror.ServiceError)
	GetAPIKeyList(params utils.PageParams) (*APIKeyListResponse, *serviceerror.ServiceError)
	GetAPIKey(keyID string) (*APIKey, *serviceerror.ServiceError)
	RevokeAPIKey(keyID string) *serviceerror.ServiceError
	DeleteAPIKey(keyID string) *serviceerror.ServiceError
	VerifyKey(key string) (*VerificationResult, *serviceerror.ServiceError)
}

// apiKeyService is the default implementation of APIKeyServiceInterface.
type apiKeyService struct {
	store apiKeyStoreInterface
}

// NewAPIKeyService creates a new instance of the API key service.
func NewAPIKeyService() APIKeyServiceInterface {
	return &apiKeyService{
		store: newCachedAPIKeyStore(newAPIKeyStore()),
	}
}

// CreateAPIKey issues a new API key. The full key value is returned exactly
// once; only its salted hash is stored.
func (s *apiKeyService) CreateAPIKey(
	name string, validitySeconds int64,
) (*CreatedAPIKey, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "APIKeyService"))

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrorInvalidAPIKey.WithViolations(map[string]string{"name": "name is required"})
	}
	if len(name) > maxKeyNameLength {
		return nil, ErrorInvalidAPIKey.WithViolations(map[string]string{
			"name": fmt.Sprintf("name may contain at most %d characters", maxKeyNameLength),
		})
	}

	keyConfig := config.GetLatticeRuntime().Config.APIKey

	prefix, err := generatePrefix()
	if err != nil {
		logger.Error("Failed to generate key prefix", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	secret, err := generateSecret(keyConfig.SecretByteLength)
	if err != nil {
		logger.Error("Failed to generate key secret", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	now := time.Now().UTC()
	credential := hash.NewCredential([]byte(secret))
	key := APIKey{
		ID:         utils.GenerateUUID(),
		Name:       name,
		Prefix:     prefix,
		CreatedAt:  now,
		ExpiresAt:  expiryFor(now, validitySeconds, keyConfig.DefaultValidity),
		credential: &credential,
	}

	if err := s.store.CreateAPIKey(key); err != nil {
		logger.Error("Failed to create api key", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	logger.Debug("API key created", log.String("id", key.ID), log.String("prefix", prefix))
	return &CreatedAPIKey{
		APIKey: key,
		Key:    assembleKey(keyConfig.KeyPrefix, prefix, secret),
	}, nil
}

// GetAPIKeyList retrieves a page of API keys.
func (s *apiKeyService) GetAPIKeyList(params utils.PageParams) (*APIKeyListResponse, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "APIKeyService"))

	total, err := s.store.GetAPIKeyCount()
	if err != nil {
		logger.Error("Failed to count api keys", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	keys, err := s.store.GetAPIKeyList(params.PerPage, params.Offset())
	if err != nil {
		logger.Error("Failed to list api keys", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &APIKeyListResponse{
		Total: total,
		Keys:  keys,
	}, nil
}

// GetAPIKey retrieves an API key by its ID.
func (s *apiKeyService) GetAPIKey(keyID string) (*APIKey, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "APIKeyService"))

	if strings.TrimSpace(keyID) == "" {
		return nil, &ErrorInvalidAPIKeyID
	}

	key, err := s.store.GetAPIKey(keyID)
	if err != nil {
		if errors.Is(err, ErrAPIKeyNotFound) {
			return nil, &ErrorAPIKeyNotFound
		}
		logger.Error("Failed to get api key", log.String("id", keyID), log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return key, nil
}

// RevokeAPIKey marks an API key as revoked. Revoked keys fail verification
// but remain listed until deleted.
func (s *apiKeyService) RevokeAPIKey(keyID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "APIKeyService"))

	key, svcErr := s.GetAPIKey(keyID)
	if svcErr != nil {
		return svcErr
	}
	if key.Revoked {
		return &ErrorAPIKeyAlreadyRevoked
	}

	if err := s.store.RevokeAPIKey(keyID); err != nil {
		if errors.Is(err, ErrAPIKeyNotFound) {
			return &ErrorAPIKeyNotFound
		}
		logger.Error("Failed to revoke api key", log.String("id", keyID), log.Error(err))
		return &ErrorInternalServerError
	}

	logger.Debug("API key revoked", log.String("id", keyID))
	return nil
}

// DeleteAPIKey deletes an API key by its ID.
func (s *apiKeyService) DeleteAPIKey(keyID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "APIKeyService"))

	if _, svcErr := s.GetAPIKey(keyID); svcErr != nil {
		return svcErr
	}

	if err := s.store.DeleteAPIKey(keyID); err != nil {
		logger.Error("Failed to delete api key", log.String("id", keyID), log.Error(err))
		return &ErrorInternalServerError
	}

	logger.Debug("API key deleted", log.String("id", keyID))
	return nil
}

// VerifyKey verifies a presented key value. The result is negative for
// malformed, unknown, revoked and expired keys alike.
func (s *apiKeyService) VerifyKey(key string) (*VerificationResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "APIKeyService"))

	prefix, secret, ok := splitKey(key)
	if !ok {
		return &VerificationResult{Valid: false}, nil
	}

	stored, err := s.store.GetAPIKeyByPrefix(prefix)
	if err != nil {
		if errors.Is(err, ErrAPIKeyNotFound) {
			return &VerificationResult{Valid: false}, nil
		}
		logger.Error("Failed to look up api key by prefix", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	if stored.Revoked || stored.credential == nil {
		return &VerificationResult{Valid: false}, nil
	}
	if stored.ExpiresAt != nil && time.Now().After(*stored.ExpiresAt) {
		return &VerificationResult{Valid: false}, nil
	}
	if !stored.credential.Verify([]byte(secret)) {
		return &VerificationResult{Valid: false}, nil
	}

	return &VerificationResult{
		Valid: true,
		KeyID: stored.ID,
		Name:  stored.Name,
	}, nil
}

// assembleKey builds the full key value presented to the caller.
func assembleKey(configuredPrefix, prefix, secret string) string {
	if configuredPrefix == "" {
		configuredPrefix = defaultKeyPrefix
	}
	return configuredPrefix + "_" + prefix + "_" + secret
}

// splitKey splits a presented key value into its prefix and secret parts.
func splitKey(key string) (string, string, bool) {
	parts := strings.SplitN(strings.TrimSpace(key), "_", 3)
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return "", "", false
	}
	return parts[1], parts[2], true
}

// expiryFor resolves the key expiry from the requested and configured validity.
// A negative requested validity issues a key that never expires.
func expiryFor(now time.Time, requestedSeconds, defaultSeconds int64) *time.Time {
	seconds := requestedSeconds
	if seconds == 0 {
		seconds = defaultSeconds
	}
	if seconds <= 0 {
		return nil
	}
	expiresAt := now.Add(time.Duration(seconds) * time.Second)
	return &expiresAt
}

// generatePrefix generates the random key prefix used for lookup.
func generatePrefix() (string, error) {
	buf := make([]byte, prefixByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// generateSecret generates the random key secret.
func generateSecret(byteLength int) (string, error) {
	if byteLength <= 0 {
		byteLength = defaultSecretByteLength
	}
	buf := make([]byte, byteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
