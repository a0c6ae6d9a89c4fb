package types

import "context"

// Loader is the contract between the read-through layer and whatever
// produces values on a cache miss (a database call, an API call, a
// computation).
//
// The core cache never calls a Loader. Only the optional loader layer
// does, so the core stays a pure in-memory data structure.
type Loader[K comparable, V any] interface {

	// Load is called when the cache misses. The key was not found in
	// memory, so the read-through layer asks the Loader to produce it.
	Load(ctx context.Context, key K) (V, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc[K comparable, V any] func(ctx context.Context, key K) (V, error)

func (f LoaderFunc[K, V]) Load(ctx context.Context, key K) (V, error) {
	return f(ctx, key)
}
