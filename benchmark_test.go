package policycache_test

import (
	"strconv"
	"testing"

	"github.com/krisalay/policycache"
	"github.com/krisalay/policycache/eviction"
)

func newBenchmarkCache(b *testing.B, p eviction.PolicyType) *policycache.Cache[string, int] {
	b.Helper()
	c, err := policycache.New[string, int](100000,
		policycache.WithPolicy[string, int](p))
	if err != nil {
		b.Fatalf("new cache: %v", err)
	}
	return c
}

//
// ================= HIT / MISS =================
//

func BenchmarkCacheGetHit(b *testing.B) {
	c := newBenchmarkCache(b, eviction.LRU)
	c.Put("key", 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("key")
	}
}

func BenchmarkCacheGetMiss(b *testing.B) {
	c := newBenchmarkCache(b, eviction.LRU)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("missing")
	}
}

//
// ================= PUT =================
//

func BenchmarkCachePut(b *testing.B) {
	c := newBenchmarkCache(b, eviction.LRU)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put(strconv.Itoa(i), i)
	}
}

// BenchmarkCachePutEvicting keeps the cache permanently full so every
// insertion pays for one eviction.
func BenchmarkCachePutEvicting(b *testing.B) {
	c, err := policycache.New[int, int](1024)
	if err != nil {
		b.Fatalf("new cache: %v", err)
	}
	for i := 0; i < 1024; i++ {
		c.Put(i, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Put(1024+i, i)
	}
}

//
// ================= PER POLICY =================
//

func BenchmarkPolicies(b *testing.B) {
	for _, p := range []eviction.PolicyType{eviction.LRU, eviction.LFU, eviction.FIFO} {
		b.Run(string(p), func(b *testing.B) {
			c := newBenchmarkCache(b, p)
			keys := make([]string, 4096)
			for i := range keys {
				keys[i] = strconv.Itoa(i)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				k := keys[i%len(keys)]
				if i%4 == 0 {
					c.Put(k, i)
				} else {
					c.Get(k)
				}
			}
		})
	}
}
