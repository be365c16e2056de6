package store

import (
	"sync"
	"time"
)

// readCacheTTL is the freshness window for leaderboard and history reads.
// Stale-by-a-minute is acceptable for those views.
const readCacheTTL = 60 * time.Second

type cacheEntry struct {
	value   any
	expires time.Time
}

// queryCache is a small TTL cache for read queries. Any write through the
// interview repo invalidates the whole cache.
type queryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

func newQueryCache(ttl time.Duration, now func() time.Time) *queryCache {
	return &queryCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

func (c *queryCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(e.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return e.value, true
}

func (c *queryCache) set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, expires: c.now().Add(c.ttl)}
}

func (c *queryCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}
