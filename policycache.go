package policycache

import (
	"errors"
	"fmt"

	"github.com/krisalay/policycache/api"
	"github.com/krisalay/policycache/eviction"
	"github.com/krisalay/policycache/store"
	"github.com/krisalay/policycache/types"
)

// ErrInvalidCapacity is returned by New when capacity is not a strictly
// positive integer.
var ErrInvalidCapacity = errors.New("policycache: capacity must be positive")

// EvictionHandler is called with each evicted pair, after it has left
// the cache. It is NOT called for explicit Remove or Purge.
type EvictionHandler[K comparable, V any] func(key K, value V)

// Option configures a cache at construction time.
type Option[K comparable, V any] func(*config[K, V])

type config[K comparable, V any] struct {
	policy  eviction.PolicyType
	metrics types.Metrics
	onEvict EvictionHandler[K, V]
}

// WithPolicy selects the eviction policy. The default is LRU.
func WithPolicy[K comparable, V any](t eviction.PolicyType) Option[K, V] {
	return func(c *config[K, V]) { c.policy = t }
}

// WithMetrics installs a metrics sink. The default discards everything.
func WithMetrics[K comparable, V any](m types.Metrics) Option[K, V] {
	return func(c *config[K, V]) { c.metrics = m }
}

// WithEvictionHandler installs a callback invoked for every evicted pair.
func WithEvictionHandler[K comparable, V any](h EvictionHandler[K, V]) Option[K, V] {
	return func(c *config[K, V]) { c.onEvict = h }
}

/*
Cache is the main cache implementation. It connects:
- the entry store (key → value)
- the active eviction policy (which key to sacrifice when full)
- metrics and the optional eviction handler

The cache owns both structures exclusively and keeps them in lockstep:
after every operation the policy tracks exactly the keys the store holds,
and the store never holds more than capacity entries.

Cache is not safe for concurrent use. Callers needing concurrency must
wrap it behind their own lock or keep one instance per goroutine.
*/
type Cache[K comparable, V any] struct {
	capacity int
	store    store.Store[K, V]
	policy   eviction.Policy[K]
	metrics  types.Metrics
	onEvict  EvictionHandler[K, V]
}

var _ api.Cache[string, int] = (*Cache[string, int])(nil)

// New constructs an empty cache holding at most capacity entries.
// It fails with ErrInvalidCapacity when capacity is zero or negative,
// and produces no cache instance in that case.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}

	cfg := config[K, V]{
		policy:  eviction.LRU,
		metrics: types.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure metrics is always non-nil.
	// This avoids defensive nil checks throughout the codebase.
	if cfg.metrics == nil {
		cfg.metrics = types.NoopMetrics{}
	}

	pol, err := eviction.New[K](cfg.policy, capacity)
	if err != nil {
		return nil, err
	}

	return &Cache[K, V]{
		capacity: capacity,
		store:    store.NewMapStore[K, V](capacity),
		policy:   pol,
		metrics:  cfg.metrics,
		onEvict:  cfg.onEvict,
	}, nil
}

/*
Get retrieves the value for a key.

On a hit the entry becomes most-favored per the active policy and the
value is returned. On a miss nothing changes.
*/
func (c *Cache[K, V]) Get(key K) (V, bool) {
	ent, ok := c.store.Get(key)
	if !ok {
		c.metrics.Miss()
		var zero V
		return zero, false
	}
	c.policy.OnGet(key)
	c.metrics.Hit()
	return ent.Value, true
}

/*
Put inserts a new key or updates an existing key's value, and always
marks the key most-favored.

If inserting a new key would push the store past capacity, exactly one
entry, chosen by the active policy, is evicted and returned with
evicted=true. Updates never evict.
*/
func (c *Cache[K, V]) Put(key K, value V) (evictedKey K, evictedValue V, evicted bool) {
	if ent, ok := c.store.Get(key); ok {
		ent.Value = value
		c.policy.OnPut(key)
		var zk K
		var zv V
		return zk, zv, false
	}

	c.store.Put(key, &types.CacheEntry[K, V]{Key: key, Value: value})
	c.policy.OnPut(key)

	if c.store.Size() <= c.capacity {
		var zk K
		var zv V
		return zk, zv, false
	}
	return c.evict()
}

// evict removes the policy's chosen victim from the store.
// Any disagreement between policy and store here is a defect in the
// policy engine, so it panics rather than returning an error.
func (c *Cache[K, V]) evict() (K, V, bool) {
	key, ok := c.policy.Evict()
	if !ok {
		panic("policycache: store over capacity but policy tracks no keys")
	}
	ent, ok := c.store.Get(key)
	if !ok {
		panic("policycache: policy chose a victim the store does not hold")
	}
	c.store.Delete(key)
	c.metrics.Eviction()
	if c.onEvict != nil {
		c.onEvict(key, ent.Value)
	}
	return key, ent.Value, true
}

/*
Remove deletes a key if present and returns its value.

Removal is idempotent: removing an absent key is a no-op reported by
ok=false. It triggers no policy side effects beyond dropping the key's
bookkeeping, and never invokes the eviction handler.
*/
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	ent, ok := c.store.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	c.store.Delete(key)
	c.policy.Remove(key)
	c.metrics.Removal()
	return ent.Value, true
}

// Contains reports whether a key is present, without touching recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.store.Get(key)
	return ok
}

// Peek returns a key's value without marking it used.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	ent, ok := c.store.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	return ent.Value, true
}

// Len returns the number of live entries.
func (c *Cache[K, V]) Len() int {
	n := c.store.Size()
	if n != c.policy.Len() {
		panic("policycache: store and policy disagree on size")
	}
	return n
}

// Capacity returns the maximum number of entries, fixed at construction.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Keys returns the live keys from most favored to next victim, without
// touching recency.
func (c *Cache[K, V]) Keys() []K {
	return c.policy.Keys()
}

// Victim reports the key the policy would evict next, without evicting.
func (c *Cache[K, V]) Victim() (K, bool) {
	return c.policy.Victim()
}

// Purge drops every entry. The eviction handler is not invoked.
func (c *Cache[K, V]) Purge() {
	c.store.Clear()
	c.policy.Reset()
}
