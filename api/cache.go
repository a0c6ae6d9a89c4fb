package api

/*
Cache defines the PUBLIC contract of the cache, independent of any
particular eviction policy. Client code that depends on this interface
can swap policies (LRU today; ARC, LIRS, 2Q when their designs land)
without changing a single call site.

All of the details (entry storage, ordering structures, victim choice)
are hidden behind this interface. No method blocks, no method takes a
context: every operation is a synchronous in-memory mutation.

Implementations are not required to be safe for concurrent use; the
library's own implementation is not.
*/
type Cache[K comparable, V any] interface {

	/*
		Get retrieves the value associated with the given key.

		BEHAVIOR:
		---------
		1. If the key exists:
		   - It becomes most-favored per the active policy
		   - Its value is returned with ok=true

		2. If the key does NOT exist:
		   - Nothing changes
		   - ok=false

		A miss is a normal outcome, not an error.
	*/
	Get(key K) (value V, ok bool)

	/*
		Put stores a key-value pair.

		BEHAVIOR:
		---------
		- Inserts a new key or replaces an existing key's value
		- Always marks the key most-favored
		- If inserting a new key pushes the cache past capacity,
		  exactly one policy-chosen entry is evicted and returned
		  with evicted=true

		Updating an existing key never evicts.
	*/
	Put(key K, value V) (evictedKey K, evictedValue V, evicted bool)

	/*
		Remove deletes a key from the cache immediately.

		BEHAVIOR:
		---------
		- Removes the key from storage and policy tracking
		- Returns the removed value with ok=true
		- Does nothing for an absent key (ok=false)

		This operation is idempotent and never invokes the
		eviction handler.
	*/
	Remove(key K) (value V, ok bool)

	// Contains reports key presence without changing recency.
	Contains(key K) bool

	// Peek returns a key's value without marking it used.
	Peek(key K) (value V, ok bool)

	// Len returns the current number of live entries.
	Len() int

	// Capacity returns the maximum number of entries, fixed at
	// construction time.
	Capacity() int

	// Keys returns the live keys from most favored to next victim.
	Keys() []K

	// Victim reports the entry the policy would evict next.
	Victim() (key K, ok bool)

	// Purge drops all entries at once.
	Purge()
}
