// This file reserves the 2Q eviction policy.

package eviction

import "fmt"

/*
2Q filters one-time accesses through a small admission queue; only keys
touched again get promoted to the main queue, so a scan of cold keys
cannot flush the hot set. The queue sizing and promotion rules are an
open design task; the policy only has to conform to the Policy contract
over two cooperating arena lists.

Until that design lands the constructor refuses to build one.
*/
func newTwoQ[K comparable](capacity int) (Policy[K], error) {
	return nil, fmt.Errorf("%w: %s", ErrNotImplemented, TwoQ)
}
