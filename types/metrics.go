package types

// This file defines how the cache reports what it is doing.

/*
Metrics is an interface that defines what the cache wants to measure.
Each method represents an event in the cache lifecycle. The cache will call
these methods whenever something happens.

The cache never reads metrics back; this is a one-way reporting channel.
*/
type Metrics interface {

	// Hit is called when the cache successfully returns a value for a key.
	Hit()

	// Miss is called when the cache does NOT find a key.
	Miss()

	// Eviction is called when a key is removed because the cache is full
	// and the active policy chose it as the victim.
	Eviction()

	// Removal is called when a key is explicitly removed by the caller.
	Removal()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

We don't want to force every user of the cache to implement metrics.
If someone does not care about metrics, the cache still works without
nil checks on every event, so we provide a default implementation that
simply ignores all metric events.
*/
type NoopMetrics struct{}

// All methods below intentionally do nothing.
// This satisfies the Metrics interface without side effects.

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Eviction() {}
func (NoopMetrics) Removal()  {}
