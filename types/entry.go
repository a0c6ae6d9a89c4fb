package types

// CacheEntry is one live (key, value) pair inside the cache.
//
// Positional metadata (where the entry sits in the eviction order) is NOT
// stored here. Each eviction policy keeps its own bookkeeping for the keys
// it tracks, so the entry shape stays the same for every policy.
type CacheEntry[K comparable, V any] struct {
	Key   K
	Value V
}
