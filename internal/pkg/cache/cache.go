package cache

import (
	"strings"
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is an expiring key/value store for derived results.
// Every instance is independent; invalidating one never touches another.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	now     func() time.Time
}

// Option configures a Cache
type Option[V any] func(*Cache[V])

// WithClock replaces the time source, used by tests to move time forward
func WithClock[V any](now func() time.Time) Option[V] {
	return func(c *Cache[V]) {
		c.now = now
	}
}

// New creates an empty cache
func New[V any](opts ...Option[V]) *Cache[V] {
	c := &Cache[V]{
		entries: make(map[string]entry[V]),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Set stores value under key until ttl elapses. A non-positive ttl stores nothing.
func (c *Cache[V]) Set(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry[V]{
		value:     value,
		expiresAt: c.now().Add(ttl),
	}
}

// Get returns the live value for key. Expired entries are removed on read.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return zero, false
	}
	return e.value, true
}

// Invalidate removes every key containing pattern. An empty pattern clears the cache.
func (c *Cache[V]) Invalidate(pattern string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if pattern == "" {
		n := len(c.entries)
		c.entries = make(map[string]entry[V])
		return n
	}

	removed := 0
	for key := range c.entries {
		if strings.Contains(key, pattern) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Purge drops all expired entries and reports how many were removed
func (c *Cache[V]) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for key, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, expired ones included
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
