package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisalay/policycache/store"
	"github.com/krisalay/policycache/types"
)

func TestMapStore(t *testing.T) {
	s := store.NewMapStore[string, int](4)
	assert.Equal(t, 0, s.Size())

	s.Put("a", &types.CacheEntry[string, int]{Key: "a", Value: 1})
	s.Put("b", &types.CacheEntry[string, int]{Key: "b", Value: 2})

	ent, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, ent.Value)
	assert.Equal(t, 2, s.Size())

	// Replacing keeps the size stable.
	s.Put("a", &types.CacheEntry[string, int]{Key: "a", Value: 10})
	ent, _ = s.Get("a")
	assert.Equal(t, 10, ent.Value)
	assert.Equal(t, 2, s.Size())

	s.Delete("a")
	_, ok = s.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Size())

	// Deleting an absent key is a no-op.
	s.Delete("a")
	assert.Equal(t, 1, s.Size())

	s.Clear()
	assert.Equal(t, 0, s.Size())
}
