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

package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type HashUtilTestSuite struct {
	suite.Suite
}

func TestHashSuite(t *testing.T) {
	suite.Run(t, new(HashUtilTestSuite))
}

func (suite *HashUtilTestSuite) TestHashStringKnownVectors() {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "EmptyString",
			input:    "",
			expected: "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		},
		{
			name:     "NormalString",
			input:    "password",
			expected: "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HashString(tc.input))
		})
	}
}

func (suite *HashUtilTestSuite) TestVerifyKnownCredential() {
	cred := Credential{
		Algorithm: "SHA256",
		Hash:      "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8",
		Salt:      "",
	}

	assert.True(suite.T(), cred.Verify([]byte("password")))
}

func (suite *HashUtilTestSuite) TestNewCredentialAndVerify() {
	input := "test-input"
	cred := NewCredential([]byte(input))

	assert.Equal(suite.T(), "SHA256", cred.Algorithm)
	assert.NotEmpty(suite.T(), cred.Salt)
	assert.True(suite.T(), cred.Verify([]byte(input)),
		"Hash verification should succeed for the same input")
}

func (suite *HashUtilTestSuite) TestVerifyRejectsWrongInput() {
	cred := NewCredential([]byte("correct-value"))

	assert.False(suite.T(), cred.Verify([]byte("wrong-value")))
}

func (suite *HashUtilTestSuite) TestDifferentInputsProduceDifferentHashes() {
	cred1 := NewCredential([]byte("input-one"))
	cred2 := NewCredential([]byte("input-two"))

	assert.NotEqual(suite.T(), cred1.Hash, cred2.Hash, "Different inputs should produce different hashes")
}

func (suite *HashUtilTestSuite) TestSameInputDifferentSalts() {
	input := "common-input"
	cred1 := NewCredential([]byte(input))
	cred2 := NewCredential([]byte(input))

	assert.NotEqual(suite.T(), cred1.Salt, cred2.Salt)
	assert.NotEqual(suite.T(), cred1.Hash, cred2.Hash, "Different salts should produce different hashes")
}

func (suite *HashUtilTestSuite) TestGenerateSaltIsRandom() {
	salt1, err1 := GenerateSalt()
	salt2, err2 := GenerateSalt()

	assert.NoError(suite.T(), err1)
	assert.NoError(suite.T(), err2)
	assert.NotEqual(suite.T(), salt1, salt2)
}
