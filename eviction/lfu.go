// This file implements LFU eviction.

package eviction

import (
	"sort"

	"github.com/krisalay/policycache/order"
)

/*
lfu evicts the key with the fewest accesses.

Keys are grouped into frequency buckets. Each bucket is an arena list
ordered by recency within that frequency, so ties at the lowest frequency
break toward the least recently touched key and the victim is always
deterministic.

minFreq tracks the smallest frequency currently present so eviction does
not scan every bucket.
*/
type lfuEntry struct {
	freq   int
	handle order.Handle
}

type lfu[K comparable] struct {
	// entries lets us quickly find a key's frequency and bucket position.
	entries map[K]*lfuEntry

	// buckets groups keys by access count. Within a bucket the front is
	// the most recently touched key at that frequency.
	buckets map[int]*order.List[K]

	// minFreq is the smallest frequency with a non-empty bucket, or 0
	// when nothing is tracked.
	minFreq int
}

func newLFU[K comparable](capacity int) *lfu[K] {
	return &lfu[K]{
		entries: make(map[K]*lfuEntry, capacity),
		buckets: make(map[int]*order.List[K]),
	}
}

// bucket returns the list for a frequency, creating it on first use.
func (l *lfu[K]) bucket(freq int) *order.List[K] {
	b, ok := l.buckets[freq]
	if !ok {
		b = order.NewList[K](1)
		l.buckets[freq] = b
	}
	return b
}

// touch moves a key one frequency bucket up.
func (l *lfu[K]) touch(key K, e *lfuEntry) {
	old := e.freq
	b := l.buckets[old]
	b.Remove(e.handle)
	if b.Len() == 0 {
		delete(l.buckets, old)
		// The key is moving to old+1, so if old was the minimum the
		// minimum simply follows it.
		if l.minFreq == old {
			l.minFreq = old + 1
		}
	}

	e.freq++
	e.handle = l.bucket(e.freq).PushFront(key)
}

// OnGet counts the access and refreshes recency within the new bucket.
func (l *lfu[K]) OnGet(key K) {
	if e, ok := l.entries[key]; ok {
		l.touch(key, e)
	}
}

// OnPut counts a write like an access for an existing key, or starts a
// new key at frequency 1.
func (l *lfu[K]) OnPut(key K) {
	if e, ok := l.entries[key]; ok {
		l.touch(key, e)
		return
	}
	e := &lfuEntry{freq: 1}
	e.handle = l.bucket(1).PushFront(key)
	l.entries[key] = e
	// A new key at frequency 1 resets the minimum.
	l.minFreq = 1
}

// Remove drops an explicitly removed key from its bucket.
func (l *lfu[K]) Remove(key K) {
	e, ok := l.entries[key]
	if !ok {
		return
	}
	b := l.buckets[e.freq]
	b.Remove(e.handle)
	if b.Len() == 0 {
		delete(l.buckets, e.freq)
		if l.minFreq == e.freq {
			l.recomputeMin()
		}
	}
	delete(l.entries, key)
}

// recomputeMin rescans bucket frequencies after the minimum bucket
// emptied through Remove or Evict. This is O(distinct frequencies),
// which stays tiny in practice.
func (l *lfu[K]) recomputeMin() {
	l.minFreq = 0
	for f := range l.buckets {
		if l.minFreq == 0 || f < l.minFreq {
			l.minFreq = f
		}
	}
}

// Evict removes and returns the least frequently used key, breaking ties
// toward the least recently touched key at that frequency.
func (l *lfu[K]) Evict() (K, bool) {
	if len(l.entries) == 0 {
		var zero K
		return zero, false
	}
	b := l.buckets[l.minFreq]
	h, ok := b.Back()
	if !ok {
		panic("eviction: lfu minimum bucket empty")
	}
	key := b.Remove(h)
	if b.Len() == 0 {
		delete(l.buckets, l.minFreq)
		l.recomputeMin()
	}
	delete(l.entries, key)
	return key, true
}

// Victim reports the key Evict would pick, without evicting.
func (l *lfu[K]) Victim() (K, bool) {
	if len(l.entries) == 0 {
		var zero K
		return zero, false
	}
	b := l.buckets[l.minFreq]
	h, ok := b.Back()
	if !ok {
		panic("eviction: lfu minimum bucket empty")
	}
	return b.Key(h), true
}

// Keys returns tracked keys from highest frequency to lowest, most
// recently touched first within each frequency.
func (l *lfu[K]) Keys() []K {
	freqs := make([]int, 0, len(l.buckets))
	for f := range l.buckets {
		freqs = append(freqs, f)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(freqs)))

	out := make([]K, 0, len(l.entries))
	for _, f := range freqs {
		out = append(out, l.buckets[f].Keys()...)
	}
	return out
}

func (l *lfu[K]) Len() int {
	return len(l.entries)
}

func (l *lfu[K]) Reset() {
	clear(l.entries)
	clear(l.buckets)
	l.minFreq = 0
}
