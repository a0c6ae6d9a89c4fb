// This file reserves the LIRS eviction policy.

package eviction

import "fmt"

/*
LIRS (Low Inter-reference Recency Set) separates keys with low
inter-reference recency from those with high inter-reference recency and
evicts from the high set first, so a key's reuse distance matters more
than its raw last-access time. The exact classification and stack
pruning rules are an open design task; the policy only has to conform to
the Policy contract over cooperating arena lists.

Until that design lands the constructor refuses to build one.
*/
func newLIRS[K comparable](capacity int) (Policy[K], error) {
	return nil, fmt.Errorf("%w: %s", ErrNotImplemented, LIRS)
}
