// Package loader is an optional read-through layer on top of a cache.
//
// The core cache never loads values itself: a miss is just a miss. This
// layer adds the "get or compute on miss" convenience for callers that
// want it, without growing the core contract.
package loader

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/krisalay/policycache/api"
	"github.com/krisalay/policycache/types"
)

/*
Cache wraps a policy cache together with a Loader.

Because this layer exists for callers that load from slow backing stores,
it is the one place in the library that is safe for concurrent use: a
mutex guards the wrapped cache, and singleflight ensures that if many
goroutines miss on the same key, only ONE of them runs the Loader while
the others wait for its result.
*/
type Cache[K comparable, V any] struct {
	mu     sync.Mutex
	cache  api.Cache[K, V]
	loader types.Loader[K, V]

	// sf coalesces concurrent loads of the same key.
	sf singleflight.Group
}

// New wraps a cache with a loader. Both must be non-nil.
func New[K comparable, V any](c api.Cache[K, V], l types.Loader[K, V]) *Cache[K, V] {
	if c == nil || l == nil {
		panic("loader: nil cache or loader")
	}
	return &Cache[K, V]{cache: c, loader: l}
}

/*
Get retrieves a value, loading it on a miss.

1. Check the wrapped cache → hit returns immediately
2. On a miss, ask the Loader for the value (coalesced per key)
3. Store the loaded value in the cache
4. Return it
*/
func (c *Cache[K, V]) Get(ctx context.Context, key K) (V, error) {
	c.mu.Lock()
	if v, ok := c.cache.Get(key); ok {
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	v, err, _ := c.sf.Do(flightKey(key), func() (any, error) {
		val, err := c.loader.Load(ctx, key)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cache.Put(key, val)
		c.mu.Unlock()
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Put writes straight through to the wrapped cache.
func (c *Cache[K, V]) Put(key K, value V) {
	c.mu.Lock()
	c.cache.Put(key, value)
	c.mu.Unlock()
}

// Remove invalidates a key in the wrapped cache. It does not touch the
// backing store.
func (c *Cache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	_, ok := c.cache.Remove(key)
	c.mu.Unlock()
	return ok
}

// flightKey folds a key into the string space singleflight works in.
func flightKey[K comparable](key K) string {
	return fmt.Sprintf("%v", key)
}
