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

import "github.com/lattice-hq/lattice/internal/system/cache"

const keyByPrefixCacheName = "APIKeyByPrefix"

// cachedAPIKeyStore decorates the API key store with a prefix lookup cache.
// Key verification hits the store on every request, so the prefix lookup is
// the one read worth caching. Writes invalidate the affected entry.
type cachedAPIKeyStore struct {
	store       apiKeyStoreInterface
	prefixCache cache.CacheInterface[*APIKey]
}

// newCachedAPIKeyStore wraps the given store with the prefix lookup cache.
func newCachedAPIKeyStore(store apiKeyStoreInterface) apiKeyStoreInterface {
	return &cachedAPIKeyStore{
		store:       store,
		prefixCache: cache.GetCache[*APIKey](keyByPrefixCacheName),
	}
}

// CreateAPIKey persists a new API key record.
func (s *cachedAPIKeyStore) CreateAPIKey(key APIKey) error {
	if err := s.store.CreateAPIKey(key); err != nil {
		return err
	}
	_ = s.prefixCache.Delete(cache.CacheKey{Key: key.Prefix})
	return nil
}

// GetAPIKeyList retrieves a page of API keys.
func (s *cachedAPIKeyStore) GetAPIKeyList(limit, offset int) ([]APIKey, error) {
	return s.store.GetAPIKeyList(limit, offset)
}

// GetAPIKeyCount returns the total number of API keys.
func (s *cachedAPIKeyStore) GetAPIKeyCount() (int, error) {
	return s.store.GetAPIKeyCount()
}

// GetAPIKey retrieves an API key by its ID.
func (s *cachedAPIKeyStore) GetAPIKey(keyID string) (*APIKey, error) {
	return s.store.GetAPIKey(keyID)
}

// GetAPIKeyByPrefix retrieves an API key by its prefix, serving cached entries
// when available.
func (s *cachedAPIKeyStore) GetAPIKeyByPrefix(prefix string) (*APIKey, error) {
	if cached, ok := s.prefixCache.Get(cache.CacheKey{Key: prefix}); ok {
		return cached, nil
	}

	key, err := s.store.GetAPIKeyByPrefix(prefix)
	if err != nil {
		return nil, err
	}
	_ = s.prefixCache.Set(cache.CacheKey{Key: prefix}, key)
	return key, nil
}

// RevokeAPIKey marks an API key as revoked and drops its cached entry.
func (s *cachedAPIKeyStore) RevokeAPIKey(keyID string) error {
	s.invalidateByID(keyID)
	return s.store.RevokeAPIKey(keyID)
}

// DeleteAPIKey deletes an API key and drops its cached entry.
func (s *cachedAPIKeyStore) DeleteAPIKey(keyID string) error {
	s.invalidateByID(keyID)
	return s.store.DeleteAPIKey(keyID)
}

// invalidateByID drops the cached prefix entry of the key, when the key still
// resolves. Failures here only delay expiry until the cache TTL.
func (s *cachedAPIKeyStore) invalidateByID(keyID string) {
	key, err := s.store.GetAPIKey(keyID)
	if err != nil {
		return
	}
	_ = s.prefixCache.Delete(cache.CacheKey{Key: key.Prefix})
}
