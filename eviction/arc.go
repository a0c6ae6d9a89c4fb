// This file reserves the ARC eviction policy.

package eviction

import "fmt"

/*
ARC (Adaptive Replacement Cache) keeps two lists, one favoring recency
and one favoring frequency, plus two ghost lists of recently evicted
keys, and adapts the split between them based on which ghost list gets
hit. The exact admission and eviction rules are an open design task; the
policy only has to conform to the Policy contract, with the ordering
structure generalized to the four cooperating arena lists.

Until that design lands the constructor refuses to build one.
*/
func newARC[K comparable](capacity int) (Policy[K], error) {
	return nil, fmt.Errorf("%w: %s", ErrNotImplemented, ARC)
}
