// Package cache implements the bounded TTL in-memory store of spec §3/§4.5
// ("MemoryCache") and the caching decorator over the Taiga client (§4.6,
// cached_client.go). The LRU-with-TTL-wrapper-entry pattern is grounded on
// the retrieval pack's cklxx-elephant.ai/internal/infra/llm/factory.go,
// which wraps github.com/hashicorp/golang-lru/v2 with a
// cacheEntry{value, expiresAt} struct for the same reason: the library
// gives capacity-bounded LRU eviction for free, TTL is a thin layer on top.
package cache

import (
	"regexp"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// cacheEntry wraps a cached value with its absolute expiry, mirroring the
// teacher pack's factory.cacheEntry.
type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// Stats is the snapshot returned by [MemoryCache.Stats] (spec §4.5
// getStats).
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	HitRate   float64
}

// MemoryCache is the process-wide bounded TTL store (spec §3 "MemoryCache").
// The zero value is not usable; construct with [New].
type MemoryCache struct {
	mu         sync.Mutex
	lru        *lru.Cache[string, cacheEntry]
	defaultTTL time.Duration
	maxSize    int

	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

// New builds a MemoryCache bounded to maxSize entries with the given
// default TTL (used when Set is called with ttl<=0).
func New(maxSize int, defaultTTL time.Duration) *MemoryCache {
	if maxSize <= 0 {
		maxSize = 1
	}
	c := &MemoryCache{defaultTTL: defaultTTL, maxSize: maxSize}
	l, err := lru.NewWithEvict[string, cacheEntry](maxSize, func(key string, value cacheEntry) {
		c.evictions.Add(1)
	})
	if err != nil {
		// Only returned by the library for size<=0, already guarded above.
		panic(err)
	}
	c.lru = l
	return c
}

// Get returns the cached value for key, or (nil, false) on miss. An expired
// entry is treated as a miss and removed (spec §4.5 "expired entries are
// treated as misses and removed").
func (c *MemoryCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.lru.Get(key)
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		c.lru.Remove(key)
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return entry.value, true
}

// Set inserts or overwrites key. ttl<=0 uses the cache's default TTL. If at
// capacity, the hashicorp LRU evicts the least-recently-used entry before
// insert, via the OnEvict callback wired in New.
func (c *MemoryCache) Set(key string, value any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, cacheEntry{value: value, expiresAt: time.Now().Add(ttl)})
}

// Invalidate removes every key matching the regular expression pattern and
// returns the count removed (spec §4.5 invalidate).
func (c *MemoryCache) Invalidate(pattern string) (int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var matched []string
	for _, k := range c.lru.Keys() {
		if re.MatchString(k) {
			matched = append(matched, k)
		}
	}
	for _, k := range matched {
		c.lru.Remove(k)
	}
	return len(matched), nil
}

// Clear removes all entries.
func (c *MemoryCache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.lru.Len()
	c.lru.Purge()
	return n
}

// Stats returns the counters required by spec §4.5 getStats.
func (c *MemoryCache) Stats() Stats {
	c.mu.Lock()
	size := c.lru.Len()
	c.mu.Unlock()

	hits := c.hits.Load()
	misses := c.misses.Load()
	var rate float64
	if total := hits + misses; total > 0 {
		rate = float64(hits) / float64(total)
	}
	return Stats{
		Hits:      hits,
		Misses:    misses,
		Evictions: c.evictions.Load(),
		Size:      size,
		HitRate:   rate,
	}
}
