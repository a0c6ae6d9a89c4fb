// Package order implements the ordering structure shared by eviction
// policies: a doubly linked list of keys stored in a flat arena.
//
// A doubly linked list normally means cyclic pointer relationships. Here
// the nodes live in one slice and link to each other by stable integer
// handles instead, with a free list for reclaimed slots. Relinking stays
// O(1) and there are no raw pointer cycles for the runtime to chase.
package order

import "fmt"

// Handle addresses one node in the arena. Handles stay valid until the
// node is removed; after that, reusing the handle is a programming error.
type Handle int32

// None is the null handle. It terminates the list at both ends and marks
// free slots.
const None Handle = -1

// node is one arena slot. prev/next are handles, never pointers.
//
// A slot on the free list keeps next as the free-list link and marks
// itself dead with free=true so stale handles can be caught.
type node[K any] struct {
	key  K
	prev Handle
	next Handle
	free bool
}

// List is a doubly linked key list with a most-favored end (front) and a
// next-victim end (back).
//
// This type is not safe for concurrent use.
// The zero value is not valid, use NewList.
type List[K any] struct {
	nodes []node[K]

	// freeHead is the head of the free list threaded through node.next.
	freeHead Handle

	head Handle // most favored
	tail Handle // next victim
	size int
}

// NewList creates an empty list. The hint pre-sizes the arena; the arena
// still grows beyond it if needed.
func NewList[K any](hint int) *List[K] {
	if hint < 0 {
		hint = 0
	}
	return &List[K]{
		nodes:    make([]node[K], 0, hint),
		freeHead: None,
		head:     None,
		tail:     None,
	}
}

// Len returns the number of live nodes.
func (l *List[K]) Len() int {
	return l.size
}

// alloc takes a slot from the free list, or grows the arena.
func (l *List[K]) alloc(key K) Handle {
	if l.freeHead != None {
		h := l.freeHead
		l.freeHead = l.nodes[h].next
		l.nodes[h] = node[K]{key: key, prev: None, next: None}
		return h
	}
	l.nodes = append(l.nodes, node[K]{key: key, prev: None, next: None})
	return Handle(len(l.nodes) - 1)
}

// release returns a slot to the free list and marks it dead.
func (l *List[K]) release(h Handle) {
	var zero K
	l.nodes[h] = node[K]{key: zero, prev: None, next: l.freeHead, free: true}
	l.freeHead = h
}

// ref resolves a handle, panicking on anything stale or out of range.
// A bad handle means a defect in the policy engine, not bad input, so
// this is an assertion rather than an error return.
func (l *List[K]) ref(h Handle) *node[K] {
	if h < 0 || int(h) >= len(l.nodes) || l.nodes[h].free {
		panic(fmt.Sprintf("order: invalid handle %d", h))
	}
	return &l.nodes[h]
}

// PushFront inserts a key at the most-favored end and returns its handle.
func (l *List[K]) PushFront(key K) Handle {
	h := l.alloc(key)
	n := &l.nodes[h]
	n.next = l.head
	if l.head != None {
		l.nodes[l.head].prev = h
	}
	l.head = h
	if l.tail == None {
		l.tail = h
	}
	l.size++
	return h
}

// PushBack inserts a key at the next-victim end and returns its handle.
// Policies that demit entries (demote without evicting) use this.
func (l *List[K]) PushBack(key K) Handle {
	h := l.alloc(key)
	n := &l.nodes[h]
	n.prev = l.tail
	if l.tail != None {
		l.nodes[l.tail].next = h
	}
	l.tail = h
	if l.head == None {
		l.head = h
	}
	l.size++
	return h
}

// unlink detaches a node from its neighbors without releasing the slot.
func (l *List[K]) unlink(h Handle) {
	n := l.ref(h)
	if n.prev != None {
		l.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != None {
		l.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = None
	n.next = None
}

// MoveToFront promotes a node to the most-favored end.
func (l *List[K]) MoveToFront(h Handle) {
	if l.head == h {
		l.ref(h) // still validate
		return
	}
	l.unlink(h)
	n := &l.nodes[h]
	n.next = l.head
	if l.head != None {
		l.nodes[l.head].prev = h
	}
	l.head = h
	if l.tail == None {
		l.tail = h
	}
}

// MoveToBack demotes a node to the next-victim end.
func (l *List[K]) MoveToBack(h Handle) {
	if l.tail == h {
		l.ref(h)
		return
	}
	l.unlink(h)
	n := &l.nodes[h]
	n.prev = l.tail
	if l.tail != None {
		l.nodes[l.tail].next = h
	}
	l.tail = h
	if l.head == None {
		l.head = h
	}
}

// Remove detaches a node, reclaims its slot, and returns its key.
// The handle must not be used again.
func (l *List[K]) Remove(h Handle) K {
	l.unlink(h)
	key := l.nodes[h].key
	l.release(h)
	l.size--
	return key
}

// Key returns the key stored at a handle.
func (l *List[K]) Key(h Handle) K {
	return l.ref(h).key
}

// Front returns the handle at the most-favored end, if any.
func (l *List[K]) Front() (Handle, bool) {
	return l.head, l.head != None
}

// Back returns the handle at the next-victim end, if any.
func (l *List[K]) Back() (Handle, bool) {
	return l.tail, l.tail != None
}

// Keys returns all keys from most favored to next victim.
func (l *List[K]) Keys() []K {
	out := make([]K, 0, l.size)
	for h := l.head; h != None; h = l.nodes[h].next {
		out = append(out, l.nodes[h].key)
	}
	return out
}

// Reset empties the list and drops the arena so the memory can be
// reclaimed. Outstanding handles become invalid.
func (l *List[K]) Reset() {
	l.nodes = l.nodes[:0]
	l.freeHead = None
	l.head = None
	l.tail = None
	l.size = 0
}
