package eviction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisalay/policycache/eviction"
)

func TestFactory(t *testing.T) {
	t.Run("implemented policies", func(t *testing.T) {
		for _, typ := range []eviction.PolicyType{eviction.LRU, eviction.LFU, eviction.FIFO} {
			p, err := eviction.New[string](typ, 8)
			require.NoError(t, err, "policy %s", typ)
			require.NotNil(t, p)
			assert.Equal(t, 0, p.Len())
		}
	})

	t.Run("roadmap policies", func(t *testing.T) {
		for _, typ := range []eviction.PolicyType{eviction.ARC, eviction.LIRS, eviction.TwoQ} {
			p, err := eviction.New[string](typ, 8)
			require.ErrorIs(t, err, eviction.ErrNotImplemented)
			assert.Nil(t, p)
		}
	})

	t.Run("unknown policy", func(t *testing.T) {
		p, err := eviction.New[string]("MRU", 8)
		require.ErrorIs(t, err, eviction.ErrUnknownPolicy)
		assert.Nil(t, p)
	})
}

func TestEvictEmptyPolicy(t *testing.T) {
	for _, typ := range []eviction.PolicyType{eviction.LRU, eviction.LFU, eviction.FIFO} {
		t.Run(string(typ), func(t *testing.T) {
			p, err := eviction.New[string](typ, 4)
			require.NoError(t, err)

			_, ok := p.Evict()
			assert.False(t, ok)
			_, ok = p.Victim()
			assert.False(t, ok)
		})
	}
}

// Shared behavior: every policy must forget a key after Remove and never
// hand it back as a victim.
func TestRemoveStopsTracking(t *testing.T) {
	for _, typ := range []eviction.PolicyType{eviction.LRU, eviction.LFU, eviction.FIFO} {
		t.Run(string(typ), func(t *testing.T) {
			p, err := eviction.New[string](typ, 4)
			require.NoError(t, err)

			p.OnPut("a")
			p.OnPut("b")
			p.Remove("a")

			require.Equal(t, 1, p.Len())
			for {
				k, ok := p.Evict()
				if !ok {
					break
				}
				assert.NotEqual(t, "a", k)
			}

			// Removing an unknown key is a no-op.
			p.Remove("never-seen")
			assert.Equal(t, 0, p.Len())
		})
	}
}

func TestResetForgetsEverything(t *testing.T) {
	for _, typ := range []eviction.PolicyType{eviction.LRU, eviction.LFU, eviction.FIFO} {
		t.Run(string(typ), func(t *testing.T) {
			p, err := eviction.New[string](typ, 4)
			require.NoError(t, err)

			p.OnPut("a")
			p.OnPut("b")
			p.Reset()

			assert.Equal(t, 0, p.Len())
			assert.Empty(t, p.Keys())
			_, ok := p.Evict()
			assert.False(t, ok)

			// Still usable after Reset.
			p.OnPut("c")
			assert.Equal(t, 1, p.Len())
		})
	}
}
