// Package cache memoizes driver query results.
//
// Adapters answer the same format and multisample questions many times
// during application startup. Results are stable for the lifetime of a
// driver device, so each one is fetched once and kept until the cache is
// reset or the entry ages out.
package cache

import "sync"

// Cache maps keys to the result of a fill function, errors included.
// When more than limit entries are held the least recently used one is
// dropped. A limit of 0 means unbounded.
//
// Cache is safe for concurrent use and must not be copied.
type Cache[K comparable, V any] struct {
	mu      sync.Mutex
	entries map[K]*entry[V]
	limit   int
	tick    uint64
}

type entry[V any] struct {
	value V
	err   error
	used  uint64
}

// New creates a cache holding at most limit entries.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries: make(map[K]*entry[V]),
		limit:   limit,
	}
}

// Load returns the result stored for key, calling fill on a miss. fill
// runs under the lock so concurrent callers never query the driver twice
// for the same key.
func (c *Cache[K, V]) Load(key K, fill func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.used = c.tick
		return e.value, e.err
	}
	v, err := fill()
	c.entries[key] = &entry[V]{value: v, err: err, used: c.tick}
	if c.limit > 0 && len(c.entries) > c.limit {
		c.evict()
	}
	return v, err
}

// Peek returns the value stored for key without filling or touching it.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Len returns the number of stored results.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Reset drops every stored result.
func (c *Cache[K, V]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// evict drops the least recently used entry. Caller holds mu.
func (c *Cache[K, V]) evict() {
	var (
		oldest K
		lowest uint64
		found  bool
	)
	for k, e := range c.entries {
		if !found || e.used < lowest {
			oldest, lowest, found = k, e.used, true
		}
	}
	if found {
		delete(c.entries, oldest)
	}
}
