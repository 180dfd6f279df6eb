package github

import (
	"strings"
	"sync"
	"time"
)

// memoryCache is a process-lifetime TTL cache for fetched API results.
// Entries are overwritten on re-fetch after expiry and never evicted before
// it; unbounded growth is acceptable for a short-lived CLI.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		entries: make(map[string]cacheEntry),
	}
}

// get retrieves a fresh value by key. Expired entries count as misses.
func (c *memoryCache) get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.value, true
}

// set stores a value under key with the given time-to-live.
func (c *memoryCache) set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

// clear removes all entries.
func (c *memoryCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// cacheKey builds a deterministic key from the operation name and its
// arguments, e.g. cacheKey("user", "octocat") -> "user:octocat".
func cacheKey(components ...string) string {
	return strings.Join(components, ":")
}

// cached returns the stored value for key when fresh, otherwise invokes
// produce and stores its result. A nil cache delegates straight to produce,
// so a disabled cache costs nothing. Concurrent misses on the same key are
// not deduplicated; the last writer wins.
func cached[T any](c *memoryCache, key string, ttl time.Duration, produce func() (T, error)) (T, error) {
	if c == nil {
		return produce()
	}

	if value, ok := c.get(key); ok {
		if typed, ok := value.(T); ok {
			return typed, nil
		}
	}

	value, err := produce()
	if err != nil {
		return value, err
	}

	c.set(key, value, ttl)
	return value, nil
}
