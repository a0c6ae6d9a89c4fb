// This file implements FIFO eviction.

package eviction

import "github.com/krisalay/policycache/order"

/*
fifo evicts keys in insertion order. Reads and value updates never change
a key's place in line; only the first insertion does.

The queue reuses the same arena list as LRU, it just never relinks.
*/
type fifo[K comparable] struct {
	// queue orders keys newest (front) to oldest (back).
	queue *order.List[K]

	// index tracks which keys are in the queue and where.
	index map[K]order.Handle
}

func newFIFO[K comparable](capacity int) *fifo[K] {
	return &fifo[K]{
		queue: order.NewList[K](capacity),
		index: make(map[K]order.Handle, capacity),
	}
}

// OnGet does nothing. FIFO ignores reads completely.
func (f *fifo[K]) OnGet(K) {}

// OnPut enqueues a key the first time it is seen. Updates to a key that is
// already queued keep its original position.
func (f *fifo[K]) OnPut(key K) {
	if _, ok := f.index[key]; ok {
		return
	}
	f.index[key] = f.queue.PushFront(key)
}

// Remove drops an explicitly removed key from the queue.
func (f *fifo[K]) Remove(key K) {
	if h, ok := f.index[key]; ok {
		f.queue.Remove(h)
		delete(f.index, key)
	}
}

// Evict removes and returns the oldest inserted key.
func (f *fifo[K]) Evict() (K, bool) {
	h, ok := f.queue.Back()
	if !ok {
		var zero K
		return zero, false
	}
	key := f.queue.Remove(h)
	delete(f.index, key)
	return key, true
}

// Victim reports the oldest inserted key without evicting.
func (f *fifo[K]) Victim() (K, bool) {
	h, ok := f.queue.Back()
	if !ok {
		var zero K
		return zero, false
	}
	return f.queue.Key(h), true
}

func (f *fifo[K]) Keys() []K {
	return f.queue.Keys()
}

func (f *fifo[K]) Len() int {
	return f.queue.Len()
}

func (f *fifo[K]) Reset() {
	f.queue.Reset()
	clear(f.index)
}
