// Package cache provides a small TTL cache with an injectable clock.
//
// It replaces the module-level mutable caches of earlier designs: each
// process instantiates its own cache explicitly, and tests control expiry
// through the clock function instead of sleeping.
package cache

import (
	"sync"
	"time"
)

// Clock returns the current time. Production code passes time.Now; tests
// pass a fake.
type Clock func() time.Time

// Cache is a concurrency-safe TTL cache.
type Cache[T any] struct {
	ttl   time.Duration
	clock Clock

	mu      sync.Mutex
	entries map[string]entry[T]
}

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// New creates a cache whose entries expire after ttl. A nil clock defaults
// to time.Now. A non-positive ttl disables caching: every Get misses.
func New[T any](ttl time.Duration, clock Clock) *Cache[T] {
	if clock == nil {
		clock = time.Now
	}
	return &Cache[T]{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]entry[T]),
	}
}

// Get returns the cached value for key and whether it is present and fresh.
// Expired entries are removed on access.
func (c *Cache[T]) Get(key string) (T, bool) {
	var zero T
	if c.ttl <= 0 {
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if c.clock().After(e.expiresAt) {
		delete(c.entries, key)
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the cache's TTL.
func (c *Cache[T]) Set(key string, value T) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{value: value, expiresAt: c.clock().Add(c.ttl)}
}

// Delete removes key from the cache.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// GetOrLoad returns the cached value for key, or calls load, stores the
// result on success, and returns it. Load errors are not cached.
func (c *Cache[T]) GetOrLoad(key string, load func() (T, error)) (T, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}
	value, err := load()
	if err != nil {
		var zero T
		return zero, err
	}
	c.Set(key, value)
	return value, nil
}
