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

package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/lattice-hq/lattice/internal/system/config"
)

type CacheTestSuite struct {
	suite.Suite
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func (suite *CacheTestSuite) SetupTest() {
	config.ResetLatticeRuntime()
	err := config.InitializeLatticeRuntime("/tmp/lattice", &config.Config{
		Cache: config.CacheConfig{
			Size: 10,
			TTL:  60,
			Properties: []config.CacheProperty{
				{Name: "DisabledCache", Disabled: true},
			},
		},
	})
	if err != nil {
		suite.T().Fatalf("Failed to initialize runtime config: %v", err)
	}
	resetCacheManager()
}

func (suite *CacheTestSuite) TearDownTest() {
	resetCacheManager()
	config.ResetLatticeRuntime()
}

func (suite *CacheTestSuite) TestSetAndGet() {
	c := GetCache[string]("TestCache")
	key := CacheKey{Key: "entry-1"}

	err := c.Set(key, "value-1")
	assert.NoError(suite.T(), err)

	value, ok := c.Get(key)
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "value-1", value)
}

func (suite *CacheTestSuite) TestGetMissingKey() {
	c := GetCache[string]("TestCache")

	value, ok := c.Get(CacheKey{Key: "absent"})
	assert.False(suite.T(), ok)
	assert.Empty(suite.T(), value)
}

func (suite *CacheTestSuite) TestDeleteRemovesEntry() {
	c := GetCache[string]("TestCache")
	key := CacheKey{Key: "entry-1"}

	assert.NoError(suite.T(), c.Set(key, "value-1"))
	assert.NoError(suite.T(), c.Delete(key))

	_, ok := c.Get(key)
	assert.False(suite.T(), ok)
}

func (suite *CacheTestSuite) TestClearRemovesAllEntries() {
	c := GetCache[string]("TestCache")

	assert.NoError(suite.T(), c.Set(CacheKey{Key: "entry-1"}, "value-1"))
	assert.NoError(suite.T(), c.Set(CacheKey{Key: "entry-2"}, "value-2"))
	assert.NoError(suite.T(), c.Clear())

	_, ok := c.Get(CacheKey{Key: "entry-1"})
	assert.False(suite.T(), ok)
	_, ok = c.Get(CacheKey{Key: "entry-2"})
	assert.False(suite.T(), ok)
}

func (suite *CacheTestSuite) TestDisabledCacheIsNoOp() {
	c := GetCache[string]("DisabledCache")
	assert.False(suite.T(), c.IsEnabled())

	key := CacheKey{Key: "entry-1"}
	assert.NoError(suite.T(), c.Set(key, "value-1"))

	_, ok := c.Get(key)
	assert.False(suite.T(), ok)
}

func (suite *CacheTestSuite) TestGetCacheReturnsSameInstance() {
	first := GetCache[string]("TestCache")
	second := GetCache[string]("TestCache")

	assert.NoError(suite.T(), first.Set(CacheKey{Key: "entry-1"}, "value-1"))

	value, ok := second.Get(CacheKey{Key: "entry-1"})
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "value-1", value)
}

func (suite *CacheTestSuite) TestExpiredEntryIsMissed() {
	c := &Cache[string]{
		enabled:   true,
		cacheName: "ExpiryCache",
		maxSize:   10,
		ttl:       time.Minute,
		entries: map[string]cacheEntry[string]{
			"stale": {value: "old", expiresAt: time.Now().Add(-time.Second)},
		},
	}

	_, ok := c.Get(CacheKey{Key: "stale"})
	assert.False(suite.T(), ok)
}

func (suite *CacheTestSuite) TestCleanupExpiredRemovesStaleEntries() {
	c := &Cache[string]{
		enabled:   true,
		cacheName: "ExpiryCache",
		maxSize:   10,
		ttl:       time.Minute,
		entries: map[string]cacheEntry[string]{
			"stale": {value: "old", expiresAt: time.Now().Add(-time.Second)},
			"fresh": {value: "new", expiresAt: time.Now().Add(time.Minute)},
		},
	}

	c.CleanupExpired()

	assert.Len(suite.T(), c.entries, 1)
	_, ok := c.Get(CacheKey{Key: "fresh"})
	assert.True(suite.T(), ok)
}

func (suite *CacheTestSuite) TestEvictsOldestWhenFull() {
	c := &Cache[string]{
		enabled:   true,
		cacheName: "SmallCache",
		maxSize:   2,
		ttl:       time.Minute,
		entries:   make(map[string]cacheEntry[string]),
	}

	assert.NoError(suite.T(), c.Set(CacheKey{Key: "first"}, "1"))
	assert.NoError(suite.T(), c.Set(CacheKey{Key: "second"}, "2"))
	assert.NoError(suite.T(), c.Set(CacheKey{Key: "third"}, "3"))

	assert.Len(suite.T(), c.entries, 2)
}
