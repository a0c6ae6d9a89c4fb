package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/krisalay/policycache"
	"github.com/krisalay/policycache/eviction"
	"github.com/krisalay/policycache/loader"
	"github.com/krisalay/policycache/types"
)

// ================= METRICS =================

type Metrics struct {
	hits      int
	misses    int
	evictions int
	removals  int
}

func (m *Metrics) Hit()      { m.hits++ }
func (m *Metrics) Miss()     { m.misses++ }
func (m *Metrics) Eviction() { m.evictions++ }
func (m *Metrics) Removal()  { m.removals++ }

func (m *Metrics) Print() {
	fmt.Println("\n==================== METRICS ====================")
	fmt.Printf("HITS      : %d\n", m.hits)
	fmt.Printf("MISSES    : %d\n", m.misses)
	fmt.Printf("EVICTIONS : %d\n", m.evictions)
	fmt.Printf("REMOVALS  : %d\n", m.removals)
}

// ================= MAIN =================

func main() {
	fmt.Println("\n==================== SYSTEM BOOT ====================")
	fmt.Println("EVICTION POLICY : LRU")
	fmt.Println("CAPACITY        : 3 keys")

	metrics := &Metrics{}

	cache, err := policycache.New[string, string](3,
		policycache.WithPolicy[string, string](eviction.LRU),
		policycache.WithMetrics[string, string](metrics),
		policycache.WithEvictionHandler[string, string](func(k, v string) {
			fmt.Printf("CACHE  → evicted %s=%s\n", k, v)
		}),
	)
	if err != nil {
		panic(err)
	}

	// ====================================================
	fmt.Println("\n==================== 1) PUT / GET ====================")
	cache.Put("a", "alpha")
	cache.Put("b", "beta")
	cache.Put("c", "gamma")
	v, _ := cache.Get("a")
	fmt.Println("CACHE  → GET a =", v)

	// ====================================================
	fmt.Println("\n==================== 2) LRU EVICTION ====================")
	fmt.Println("CACHE  → next victim:", first(cache.Victim()))
	cache.Put("d", "delta") // evicts b, the least recently touched
	fmt.Println("CACHE  → keys (MRU→LRU):", cache.Keys())

	// ====================================================
	fmt.Println("\n==================== 3) MISS ====================")
	_, ok := cache.Get("b")
	fmt.Println("CACHE  → GET b present =", ok)

	// ====================================================
	fmt.Println("\n==================== 4) READ-THROUGH + SINGLEFLIGHT ====================")
	lc := loader.New[string, string](cache, types.LoaderFunc[string, string](
		func(ctx context.Context, key string) (string, error) {
			fmt.Println("STORE  → load:", key)
			return "loaded-" + key, nil
		}))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, _ := lc.Get(context.Background(), "remote")
			fmt.Println("CACHE  → GET remote =", v)
		}()
	}
	wg.Wait()

	metrics.Print()
}

func first[T any](v T, _ bool) T { return v }
