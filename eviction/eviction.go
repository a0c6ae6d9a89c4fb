package eviction

/*
This file defines how the cache decides what to remove when it runs out of space.
*/

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned by the factory for policies that are
// declared on the roadmap but have no committed design yet.
var ErrNotImplemented = errors.New("eviction: policy not implemented")

// ErrUnknownPolicy is returned by the factory for a PolicyType it has
// never heard of.
var ErrUnknownPolicy = errors.New("eviction: unknown policy")

/*
Policy is the interface that all eviction strategies must follow.

This is a set of rules that any eviction algorithm (LRU, LFU, FIFO, ARC, ...)
must obey so the rest of the cache can interact with it in a uniform way.

The cache does NOT care how eviction works internally. It only calls these
methods. A policy tracks keys only; values stay in the entry store. The
cache keeps the two in lockstep: the set of keys a policy tracks is always
exactly the set of keys in the store.

Policies are not safe for concurrent use.
*/
type Policy[K comparable] interface {

	// OnGet is called whenever a key is read from the cache.
	//
	// Recency-based strategies promote the key here. FIFO ignores it.
	OnGet(K)

	// OnPut is called whenever a key is written to the cache, both for
	// first insertion and for value updates. A write counts as a use, so
	// recency-based strategies promote here too.
	OnPut(K)

	// Remove is called when a key is explicitly removed from the cache
	// (not evicted). The policy must drop all bookkeeping for that key.
	Remove(K)

	// Evict is called when the cache is over capacity and needs space.
	// The policy picks the victim, stops tracking it, and returns it.
	// The cache then removes it from storage.
	//
	// ok is false only when the policy tracks no keys at all.
	Evict() (key K, ok bool)

	// Victim reports the key Evict would pick right now, without
	// changing any state.
	Victim() (key K, ok bool)

	// Keys returns the tracked keys from most favored to next victim.
	Keys() []K

	// Len returns how many keys the policy is tracking.
	Len() int

	// Reset drops all bookkeeping.
	Reset()
}

// PolicyType is a simple identifier for eviction strategies.
type PolicyType string

const (
	// LRU (Least Recently Used): evicts the key that has NOT been touched
	// (read or written) for the longest time.
	LRU PolicyType = "LRU"

	// LFU (Least Frequently Used): evicts the key that has been accessed
	// the fewest times. Ties break toward the least recently touched key
	// within the lowest frequency, so the victim is deterministic.
	LFU PolicyType = "LFU"

	// FIFO (First In First Out): evicts the oldest inserted key,
	// regardless of access.
	FIFO PolicyType = "FIFO"

	// ARC (Adaptive Replacement Cache): balances recency and frequency
	// lists with an adaptive target size. Roadmap; no committed design.
	ARC PolicyType = "ARC"

	// LIRS (Low Inter-reference Recency Set): classifies entries by
	// inter-reference distance rather than raw recency. Roadmap; no
	// committed design.
	LIRS PolicyType = "LIRS"

	// TwoQ (2Q): a small admission queue filters one-time accesses before
	// promotion to the main queue. Roadmap; no committed design.
	TwoQ PolicyType = "2Q"
)

// New is a small factory function. Given a PolicyType, it creates the
// correct eviction policy sized for the given capacity.
//
// Roadmap policies (ARC, LIRS, 2Q) fail with ErrNotImplemented until
// their designs land.
func New[K comparable](t PolicyType, capacity int) (Policy[K], error) {
	switch t {
	case LRU:
		return newLRU[K](capacity), nil
	case LFU:
		return newLFU[K](capacity), nil
	case FIFO:
		return newFIFO[K](capacity), nil
	case ARC:
		return newARC[K](capacity)
	case LIRS:
		return newLIRS[K](capacity)
	case TwoQ:
		return newTwoQ[K](capacity)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, t)
	}
}
