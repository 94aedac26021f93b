package projection

import (
	"container/list"
	"sync"
)

// DefaultCacheSize bounds the package-level schema cache.
const DefaultCacheSize = 1000

// Stats is a point-in-time snapshot of cache effectiveness counters.
// Hits and misses accumulate for the life of the cache unless explicitly
// reset.
type Stats struct {
	Size    int
	Hits    uint64
	Misses  uint64
	HitRate float64
}

type cacheEntry struct {
	key    string
	schema *Schema
}

// SchemaCache is a bounded key -> compiled-schema store with LRU eviction.
// All methods are safe for concurrent use; the entry map and recency list
// form one critical section.
type SchemaCache struct {
	mu      sync.Mutex
	max     int
	entries map[string]*list.Element
	recency *list.List // front = most recently used
	hits    uint64
	misses  uint64
}

// NewSchemaCache creates a cache bounded to max entries. A non-positive max
// falls back to DefaultCacheSize.
func NewSchemaCache(max int) *SchemaCache {
	if max <= 0 {
		max = DefaultCacheSize
	}
	return &SchemaCache{
		max:     max,
		entries: make(map[string]*list.Element),
		recency: list.New(),
	}
}

// GetOrBuild returns the schema cached under key, invoking factory on a miss.
// A hit moves the entry to the most-recently-used position. A miss stores the
// factory result and evicts the least-recently-used entry when the bound
// would be exceeded. Factory errors are returned as-is and nothing is cached.
func (c *SchemaCache) GetOrBuild(key string, factory func() (*Schema, error)) (*Schema, error) {
	c.mu.Lock()
	if el, ok := c.entries[key]; ok {
		c.hits++
		c.recency.MoveToFront(el)
		s := el.Value.(*cacheEntry).schema
		c.mu.Unlock()
		return s, nil
	}
	c.misses++
	c.mu.Unlock()

	// build outside the lock; concurrent misses on the same key may race to
	// build, and the first stored schema wins to keep reference stability
	s, err := factory()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		c.recency.MoveToFront(el)
		return el.Value.(*cacheEntry).schema, nil
	}
	c.entries[key] = c.recency.PushFront(&cacheEntry{key: key, schema: s})
	if c.recency.Len() > c.max {
		oldest := c.recency.Back()
		if oldest != nil {
			c.recency.Remove(oldest)
			delete(c.entries, oldest.Value.(*cacheEntry).key)
		}
	}
	return s, nil
}

// Has reports presence without touching recency or the hit/miss counters.
func (c *SchemaCache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Len returns the number of cached schemas.
func (c *SchemaCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns a snapshot of size and hit/miss counters.
func (c *SchemaCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := Stats{Size: len(c.entries), Hits: c.hits, Misses: c.misses}
	if total := c.hits + c.misses; total > 0 {
		st.HitRate = float64(c.hits) / float64(total)
	}
	return st
}

// ResetStats zeroes the counters while keeping cached entries.
func (c *SchemaCache) ResetStats() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hits = 0
	c.misses = 0
}

// Clear empties the cache and resets the counters atomically.
func (c *SchemaCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.recency.Init()
	c.hits = 0
	c.misses = 0
}

// defaultCache backs the package-level convenience API. Callers needing an
// isolated lifecycle should construct their own SchemaCache and inject it via
// Options.Cache.
var defaultCache = NewSchemaCache(DefaultCacheSize)

// CacheStats returns the statistics of the package-level cache.
func CacheStats() Stats { return defaultCache.Stats() }

// ClearCache empties the package-level cache and resets its statistics.
func ClearCache() { defaultCache.Clear() }

// ResetCacheStats zeroes the package-level cache counters, keeping entries.
func ResetCacheStats() { defaultCache.ResetStats() }
