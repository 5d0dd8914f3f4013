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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lattice-hq/lattice/internal/system/config"
	"github.com/lattice-hq/lattice/internal/system/crypto/hash"
	"github.com/lattice-hq/lattice/internal/system/utils"
)

type apiKeyStoreMock struct {
	mock.Mock
}

func (m *apiKeyStoreMock) CreateAPIKey(key APIKey) error {
	args := m.Called(key)
	return args.Error(0)
}

func (m *apiKeyStoreMock) GetAPIKeyList(limit, offset int) ([]APIKey, error) {
	args := m.Called(limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]APIKey), args.Error(1)
}

func (m *apiKeyStoreMock) GetAPIKeyCount() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *apiKeyStoreMock) GetAPIKey(keyID string) (*APIKey, error) {
	args := m.Called(keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*APIKey), args.Error(1)
}

func (m *apiKeyStoreMock) GetAPIKeyByPrefix(prefix string) (*APIKey, error) {
	args := m.Called(prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*APIKey), args.Error(1)
}

func (m *apiKeyStoreMock) RevokeAPIKey(keyID string) error {
	args := m.Called(keyID)
	return args.Error(0)
}

func (m *apiKeyStoreMock) DeleteAPIKey(keyID string) error {
	args := m.Called(keyID)
	return args.Error(0)
}

type APIKeyServiceTestSuite struct {
	suite.Suite
	mockStore *apiKeyStoreMock
	service   APIKeyServiceInterface
}

func TestAPIKeyServiceSuite(t *testing.T) {
	suite.Run(t, new(APIKeyServiceTestSuite))
}

func (suite *APIKeyServiceTestSuite) SetupSuite() {
	config.ResetLatticeRuntime()
	err := config.InitializeLatticeRuntime("/tmp/lattice", &config.Config{
		APIKey: config.APIKeyConfig{
			KeyPrefix:        "lk",
			DefaultValidity:  3600,
			SecretByteLength: 32,
		},
	})
	suite.Require().NoError(err)
}

func (suite *APIKeyServiceTestSuite) SetupTest() {
	suite.mockStore = new(apiKeyStoreMock)
	suite.service = &apiKeyService{store: suite.mockStore}
}

func (suite *APIKeyServiceTestSuite) TestCreateAPIKeySuccess() {
	var stored APIKey
	suite.mockStore.On("CreateAPIKey", mock.MatchedBy(func(k APIKey) bool {
		stored = k
		return k.credential != nil && k.credential.Hash != ""
	})).Return(nil)

	created, svcErr := suite.service.CreateAPIKey("ci-pipeline", 0)

	suite.Nil(svcErr)
	if suite.NotNil(created) {
		parts := strings.SplitN(created.Key, "_", 3)
		suite.Len(parts, 3)
		suite.Equal("lk", parts[0])
		suite.Equal(created.Prefix, parts[1])
		suite.NotContains(created.Key, stored.credential.Hash)
		if suite.NotNil(created.ExpiresAt) {
			suite.WithinDuration(time.Now().Add(time.Hour), *created.ExpiresAt, time.Minute)
		}
	}
}

func (suite *APIKeyServiceTestSuite) TestCreateAPIKeyNeverExpires() {
	suite.mockStore.On("CreateAPIKey", mock.AnythingOfType("APIKey")).Return(nil)

	created, svcErr := suite.service.CreateAPIKey("permanent", -1)

	suite.Nil(svcErr)
	if suite.NotNil(created) {
		suite.Nil(created.ExpiresAt)
	}
}

func (suite *APIKeyServiceTestSuite) TestCreateAPIKeyEmptyName() {
	created, svcErr := suite.service.CreateAPIKey("  ", 0)

	suite.Nil(created)
	if suite.NotNil(svcErr) {
		suite.Equal(ErrorInvalidAPIKey.Code, svcErr.Code)
		suite.Contains(svcErr.Violations, "name")
	}
}

func (suite *APIKeyServiceTestSuite) TestVerifyKeySuccess() {
	credential := hash.NewCredential([]byte("topsecret"))
	suite.mockStore.On("GetAPIKeyByPrefix", "abcd1234").Return(&APIKey{
		ID:         "key-1",
		Name:       "ci-pipeline",
		Prefix:     "abcd1234",
		credential: &credential,
	}, nil)

	result, svcErr := suite.service.VerifyKey("lk_abcd1234_topsecret")

	suite.Nil(svcErr)
	if suite.NotNil(result) {
		suite.True(result.Valid)
		suite.Equal("key-1", result.KeyID)
	}
}

func (suite *APIKeyServiceTestSuite) TestVerifyKeyFailures() {
	credential := hash.NewCredential([]byte("topsecret"))
	expired := time.Now().Add(-time.Hour)

	testCases := []struct {
		name  string
		key   string
		setup func()
	}{
		{
			name:  "MalformedKey",
			key:   "not-a-key",
			setup: func() {},
		},
		{
			name: "UnknownPrefix",
			key:  "lk_unknown1_topsecret",
			setup: func() {
				suite.mockStore.On("GetAPIKeyByPrefix", "unknown1").Return(nil, ErrAPIKeyNotFound)
			},
		},
		{
			name: "WrongSecret",
			key:  "lk_abcd1234_wrongsecret",
			setup: func() {
				suite.mockStore.On("GetAPIKeyByPrefix", "abcd1234").Return(&APIKey{
					ID: "key-1", Prefix: "abcd1234", credential: &credential,
				}, nil)
			},
		},
		{
			name: "RevokedKey",
			key:  "lk_abcd1234_topsecret",
			setup: func() {
				suite.mockStore.On("GetAPIKeyByPrefix", "abcd1234").Return(&APIKey{
					ID: "key-1", Prefix: "abcd1234", Revoked: true, credential: &credential,
				}, nil)
			},
		},
		{
			name: "ExpiredKey",
			key:  "lk_abcd1234_topsecret",
			setup: func() {
				suite.mockStore.On("GetAPIKeyByPrefix", "abcd1234").Return(&APIKey{
					ID: "key-1", Prefix: "abcd1234", ExpiresAt: &expired, credential: &credential,
				}, nil)
			},
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockStore = new(apiKeyStoreMock)
			suite.service = &apiKeyService{store: suite.mockStore}
			tc.setup()

			result, svcErr := suite.service.VerifyKey(tc.key)

			suite.Nil(svcErr)
			if suite.NotNil(result) {
				suite.False(result.Valid)
				suite.Empty(result.KeyID)
			}
		})
	}
}

func (suite *APIKeyServiceTestSuite) TestRevokeAPIKeySuccess() {
	suite.mockStore.On("GetAPIKey", "key-1").Return(&APIKey{ID: "key-1", Name: "ci-pipeline"}, nil)
	suite.mockStore.On("RevokeAPIKey", "key-1").Return(nil)

	svcErr := suite.service.RevokeAPIKey("key-1")

	suite.Nil(svcErr)
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *APIKeyServiceTestSuite) TestRevokeAPIKeyAlreadyRevoked() {
	suite.mockStore.On("GetAPIKey", "key-1").Return(&APIKey{ID: "key-1", Revoked: true}, nil)

	svcErr := suite.service.RevokeAPIKey("key-1")

	if suite.NotNil(svcErr) {
		suite.Equal(ErrorAPIKeyAlreadyRevoked.Code, svcErr.Code)
	}
	suite.mockStore.AssertNotCalled(suite.T(), "RevokeAPIKey", "key-1")
}

func (suite *APIKeyServiceTestSuite) TestGetAPIKeyNotFound() {
	suite.mockStore.On("GetAPIKey", "missing").Return(nil, ErrAPIKeyNotFound)

	key, svcErr := suite.service.GetAPIKey("missing")

	suite.Nil(key)
	if suite.NotNil(svcErr) {
		suite.Equal(ErrorAPIKeyNotFound.Code, svcErr.Code)
	}
}

func (suite *APIKeyServiceTestSuite) TestGetAPIKeyList() {
	suite.mockStore.On("GetAPIKeyCount").Return(3, nil)
	suite.mockStore.On("GetAPIKeyList", 30, 0).Return([]APIKey{
		{ID: "key-1", Name: "ci-pipeline"},
	}, nil)

	listResponse, svcErr := suite.service.GetAPIKeyList(utils.PageParams{Page: 1, PerPage: 30})

	suite.Nil(svcErr)
	if suite.NotNil(listResponse) {
		suite.Equal(3, listResponse.Total)
		suite.Len(listResponse.Keys, 1)
	}
}
