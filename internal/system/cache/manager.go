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
	"sync"
	"time"

	"github.com/lattice-hq/lattice/internal/system/config"
	"github.com/lattice-hq/lattice/internal/system/log"
)

const defaultCleanupInterval = 300

// cleanable is the subset of cache behavior the manager needs for cleanup.
type cleanable interface {
	GetName() string
	CleanupExpired()
}

// CacheManagerInterface defines the interface for the central cache manager.
type CacheManagerInterface interface {
	Init()
	Stop()
}

// CacheManager owns the registered caches and runs the periodic cleanup routine.
type CacheManager struct {
	caches map[string]cleanable
	stop   chan struct{}
	mu     sync.RWMutex
}

var (
	managerInstance *CacheManager
	managerOnce     sync.Once
)

// GetCacheManager returns the singleton cache manager instance.
func GetCacheManager() CacheManagerInterface {
	managerOnce.Do(func() {
		managerInstance = &CacheManager{
			caches: make(map[string]cleanable),
			stop:   make(chan struct{}),
		}
	})
	return managerInstance
}

// GetCache returns the named cache, creating and registering it on first use.
func GetCache[T any](cacheName string) CacheInterface[T] {
	manager := GetCacheManager().(*CacheManager)

	manager.mu.RLock()
	existing, ok := manager.caches[cacheName]
	manager.mu.RUnlock()

	if ok {
		if typed, ok := existing.(CacheInterface[T]); ok {
			return typed
		}
	}

	manager.mu.Lock()
	defer manager.mu.Unlock()

	if existing, ok := manager.caches[cacheName]; ok {
		if typed, ok := existing.(CacheInterface[T]); ok {
			return typed
		}
	}

	newlyCreated := newCache[T](cacheName)
	manager.caches[cacheName] = newlyCreated
	return newlyCreated
}

// Init starts the periodic cleanup routine for all registered caches.
func (cm *CacheManager) Init() {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CacheManager"))

	cacheConfig := config.GetLatticeRuntime().Config.Cache
	if cacheConfig.Disabled {
		logger.Debug("Caching is disabled, skipping cleanup routine")
		return
	}

	interval := cacheConfig.CleanupInterval
	if interval <= 0 {
		interval = defaultCleanupInterval
	}

	go func() {
		ticker := time.NewTicker(time.Duration(interval) * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				cm.cleanupAll()
			case <-cm.stop:
				return
			}
		}
	}()

	logger.Debug("Cache cleanup routine started", log.Int("intervalSeconds", interval))
}

// Stop stops the cleanup routine.
func (cm *CacheManager) Stop() {
	close(cm.stop)
}

// cleanupAll removes expired entries from every registered cache.
func (cm *CacheManager) cleanupAll() {
	cm.mu.RLock()
	caches := make([]cleanable, 0, len(cm.caches))
	for _, c := range cm.caches {
		caches = append(caches, c)
	}
	cm.mu.RUnlock()

	for _, c := range caches {
		c.CleanupExpired()
	}
}

// resetCacheManager resets the cache manager singleton. Used only in tests.
func resetCacheManager() {
	managerInstance = nil
	managerOnce = sync.Once{}
}
