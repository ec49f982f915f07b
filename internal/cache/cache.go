// Package cache provides a time-to-live cache with single-flight fetch
// coalescing for external read-only lookups (quotes, statements, profiles).
//
// The cache is pure key -> value + expiry, never a source of truth: entries
// expire lazily at read time and an expired entry is simply a miss. Failed
// fetches are propagated to every concurrent waiter and never cached, so the
// next call retries immediately (no negative caching).
package cache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a TTL cache for one payload type. The TTL is fixed per instance
// and applies to every key. A Cache must be constructed once at process
// start and injected into its consumers; it is safe for concurrent use.
type Cache[V any] struct {
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group

	mu      sync.RWMutex
	entries map[string]entry[V]
}

// New creates a Cache whose entries stay fresh for ttl after insertion.
func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry[V]),
	}
}

// Get returns the cached value for key if it is still fresh, without calling
// fetch. On a miss it performs exactly one fetch per key even under
// concurrent callers: simultaneous misses for the same key share the one
// in-flight fetch and all receive its result. A successful fetch is cached
// with now + TTL; a failed fetch is returned to every waiter and caches
// nothing.
func (c *Cache[V]) Get(ctx context.Context, key string, fetch func(ctx context.Context) (V, error)) (V, error) {
	if v, ok := c.lookup(key); ok {
		return v, nil
	}

	result, err, _ := c.group.Do(key, func() (interface{}, error) {
		// A waiter queued behind a completed flight may arrive after the
		// value landed; serve it from the cache instead of refetching.
		if v, ok := c.lookup(key); ok {
			return v, nil
		}

		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	return result.(V), nil
}

// Sweep removes expired entries and returns how many were evicted. Sweeping
// is not needed for correctness (expiry is evaluated at read time), only to
// bound memory growth over long uptime.
func (c *Cache[V]) Sweep() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := 0
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of entries currently held, fresh or not.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *Cache[V]) lookup(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

func (c *Cache[V]) store(key string, v V) {
	c.mu.Lock()
	c.entries[key] = entry[V]{value: v, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}
