package dynamic

import (
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/agenthands/praline/internal/core/model"
)

// Cache holds dynamic-information results for a bounded time. It is
// the only state shared across requests; a mutex around the
// read-check-then-write path is sufficient since this is a soft cache
// and a few seconds of staleness under race is acceptable.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	data      model.DynamicInfo
	fetchedAt time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return NewCacheWithClock(ttl, time.Now)
}

// NewCacheWithClock injects the clock, which tests replace.
func NewCacheWithClock(ttl time.Duration, now func() time.Time) *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     now,
	}
}

// Key derives the cache key from the intent and a hash of the query.
func Key(intentCategory, query string) string {
	h := fnv.New64a()
	h.Write([]byte(query))
	return fmt.Sprintf("%s_%d", intentCategory, h.Sum64())
}

// Get returns a live entry verbatim. Expired entries are evicted on
// access.
func (c *Cache) Get(key string) (model.DynamicInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.fetchedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.data, true
}

// Put stores a fresh entry and opportunistically evicts everything
// past the time-to-live.
func (c *Cache) Put(key string, data model.DynamicInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.entries[key] = cacheEntry{data: data, fetchedAt: now}

	for k, entry := range c.entries {
		if now.Sub(entry.fetchedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
}

// Len reports the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
