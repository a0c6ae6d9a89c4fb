package store

import "github.com/krisalay/policycache/types"

/*
This file defines how entries are actually stored.

The cache core is single-threaded by design, so the store is a plain map
behind a small interface. The interface exists so the storage shape can be
swapped (sharded, copy-on-write, off-heap) without touching the policy
engine or the cache contract.
*/

// Store is the interface the cache uses to keep cache entries.
type Store[K comparable, V any] interface {

	// Get retrieves an entry by key.
	Get(K) (*types.CacheEntry[K, V], bool)

	// Put inserts or replaces an entry.
	Put(K, *types.CacheEntry[K, V])

	// Delete removes an entry.
	Delete(K)

	// Size returns how many entries are stored.
	Size() int

	// Clear removes every entry.
	Clear()
}

// mapStore is the map-backed Store used by the cache.
type mapStore[K comparable, V any] struct {
	data map[K]*types.CacheEntry[K, V]
}

// NewMapStore creates an empty store. The hint pre-sizes the map.
func NewMapStore[K comparable, V any](hint int) Store[K, V] {
	if hint < 0 {
		hint = 0
	}
	return &mapStore[K, V]{
		data: make(map[K]*types.CacheEntry[K, V], hint),
	}
}

func (s *mapStore[K, V]) Get(key K) (*types.CacheEntry[K, V], bool) {
	ent, ok := s.data[key]
	return ent, ok
}

func (s *mapStore[K, V]) Put(key K, ent *types.CacheEntry[K, V]) {
	s.data[key] = ent
}

func (s *mapStore[K, V]) Delete(key K) {
	delete(s.data, key)
}

func (s *mapStore[K, V]) Size() int {
	return len(s.data)
}

func (s *mapStore[K, V]) Clear() {
	clear(s.data)
}
