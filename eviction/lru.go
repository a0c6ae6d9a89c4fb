// This file implements LRU eviction.

package eviction

import "github.com/krisalay/policycache/order"

/*
lru is the concrete implementation of the LRU eviction policy.

Usage order lives in an arena-backed doubly linked list: the front is the
most recently touched key, the back is the next victim. The map gives O(1)
access to a key's position so every operation is O(1) relinking.

Because the list imposes a strict total order over all tracked keys, there
is never more than one possible victim. No tie-breaking is needed.
*/
type lru[K comparable] struct {
	// list orders keys from most recently used (front) to least (back).
	list *order.List[K]

	// index maps cache keys to their list positions.
	index map[K]order.Handle
}

func newLRU[K comparable](capacity int) *lru[K] {
	return &lru[K]{
		list:  order.NewList[K](capacity),
		index: make(map[K]order.Handle, capacity),
	}
}

// OnGet promotes the key: accessed means recently used.
func (l *lru[K]) OnGet(key K) {
	if h, ok := l.index[key]; ok {
		l.list.MoveToFront(h)
	}
}

// OnPut promotes an existing key or starts tracking a new one at the
// front. A write counts as a use, same as a read.
func (l *lru[K]) OnPut(key K) {
	if h, ok := l.index[key]; ok {
		l.list.MoveToFront(h)
		return
	}
	l.index[key] = l.list.PushFront(key)
}

// Remove stops tracking an explicitly removed key.
func (l *lru[K]) Remove(key K) {
	if h, ok := l.index[key]; ok {
		l.list.Remove(h)
		delete(l.index, key)
	}
}

// Evict removes and returns the least recently used key, from the back
// of the list.
func (l *lru[K]) Evict() (K, bool) {
	h, ok := l.list.Back()
	if !ok {
		var zero K
		return zero, false
	}
	key := l.list.Remove(h)
	delete(l.index, key)
	return key, true
}

// Victim reports the current least recently used key without evicting.
func (l *lru[K]) Victim() (K, bool) {
	h, ok := l.list.Back()
	if !ok {
		var zero K
		return zero, false
	}
	return l.list.Key(h), true
}

func (l *lru[K]) Keys() []K {
	return l.list.Keys()
}

func (l *lru[K]) Len() int {
	return l.list.Len()
}

func (l *lru[K]) Reset() {
	l.list.Reset()
	clear(l.index)
}
