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

// Package cache provides a centralized in-memory cache management system.
package cache

import (
	"sync"
	"time"

	"github.com/lattice-hq/lattice/internal/system/config"
	"github.com/lattice-hq/lattice/internal/system/log"
)

const (
	defaultCacheSize = 1000
	defaultCacheTTL  = 300
)

// CacheKey represents a key used to identify cache entries.
type CacheKey struct {
	Key string
}

// ToString returns the string representation of the cache key.
func (key CacheKey) ToString() string {
	return key.Key
}

// CacheInterface defines the common interface for cache operations.
type CacheInterface[T any] interface {
	GetName() string
	Set(key CacheKey, value T) error
	Get(key CacheKey) (T, bool)
	Delete(key CacheKey) error
	Clear() error
	IsEnabled() bool
	CleanupExpired()
}

// cacheEntry holds a cached value together with its expiry time.
type cacheEntry[T any] struct {
	value     T
	expiresAt time.Time
}

// Cache implements the CacheInterface for individual caches.
type Cache[T any] struct {
	enabled   bool
	cacheName string
	maxSize   int
	ttl       time.Duration
	entries   map[string]cacheEntry[T]
	mu        sync.RWMutex
}

// newCache creates a new cache instance using the cache configuration.
func newCache[T any](cacheName string) CacheInterface[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"),
		log.String("cacheName", cacheName))

	cacheConfig := config.GetLatticeRuntime().Config.Cache
	if cacheConfig.Disabled {
		logger.Debug("Caching is disabled, returning empty")
		return &Cache[T]{
			enabled:   false,
			cacheName: cacheName,
		}
	}

	cacheProperty := getCacheProperty(cacheConfig, cacheName)
	if cacheProperty.Disabled {
		logger.Debug("Individual cache is disabled, returning empty")
		return &Cache[T]{
			enabled:   false,
			cacheName: cacheName,
		}
	}

	logger.Debug("Initializing the cache")

	size := cacheProperty.Size
	if size <= 0 {
		size = cacheConfig.Size
	}
	if size <= 0 {
		size = defaultCacheSize
	}

	ttl := cacheProperty.TTL
	if ttl <= 0 {
		ttl = cacheConfig.TTL
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &Cache[T]{
		enabled:   true,
		cacheName: cacheName,
		maxSize:   size,
		ttl:       time.Duration(ttl) * time.Second,
		entries:   make(map[string]cacheEntry[T]),
	}
}

// GetName returns the name of the cache.
func (c *Cache[T]) GetName() string {
	return c.cacheName
}

// IsEnabled returns whether the cache is enabled.
func (c *Cache[T]) IsEnabled() bool {
	return c.enabled
}

// Set stores a value in the cache under the given key.
func (c *Cache[T]) Set(key CacheKey, value T) error {
	if !c.enabled || key.Key == "" {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Evict the oldest entry when the cache is full.
	if len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key.ToString()] = cacheEntry[T]{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	return nil
}

// Get retrieves a value from the cache by key.
func (c *Cache[T]) Get(key CacheKey) (T, bool) {
	var zero T
	if !c.enabled || key.Key == "" {
		return zero, false
	}

	c.mu.RLock()
	entry, ok := c.entries[key.ToString()]
	c.mu.RUnlock()

	if !ok {
		return zero, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key.ToString())
		c.mu.Unlock()
		return zero, false
	}
	return entry.value, true
}

// Delete removes a value from the cache by key.
func (c *Cache[T]) Delete(key CacheKey) error {
	if !c.enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key.ToString())
	return nil
}

// Clear removes all values from the cache.
func (c *Cache[T]) Clear() error {
	if !c.enabled {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]cacheEntry[T])
	return nil
}

// CleanupExpired removes all expired entries from the cache.
func (c *Cache[T]) CleanupExpired() {
	if !c.enabled {
		return
	}

	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	for key, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, key)
		}
	}
}

// evictOldest removes the entry closest to expiry. Caller must hold the lock.
func (c *Cache[T]) evictOldest() {
	var oldestKey string
	var oldestExpiry time.Time
	first := true

	for key, entry := range c.entries {
		if first || entry.expiresAt.Before(oldestExpiry) {
			oldestKey = key
			oldestExpiry = entry.expiresAt
			first = false
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// getCacheProperty returns the configuration for an individual cache by name.
func getCacheProperty(cacheConfig config.CacheConfig, cacheName string) config.CacheProperty {
	for _, property := range cacheConfig.Properties {
		if property.Name == cacheName {
			return property
		}
	}
	return config.CacheProperty{}
}
