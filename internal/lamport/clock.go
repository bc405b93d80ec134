// Package lamport implements a Lamport logical clock: a monotonic counter
// advanced on local events and on message receipt so that causally related
// events always carry increasing timestamps.
package lamport

import "sync"

// Clock is safe for concurrent use by multiple goroutines. The zero value
// starts at timestamp 0, matching spec: the first Tick() returns 1.
type Clock struct {
	mu sync.Mutex
	ts int64
}

// New returns a Clock starting at timestamp 0.
func New() *Clock {
	return &Clock{}
}

// Tick records a local event: ts := ts + 1, and returns the new value.
func (c *Clock) Tick() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ts++
	return c.ts
}

// Observe records a remote event carrying the given timestamp:
// ts := max(ts, incoming) + 1, and returns the new value. This is the
// second Lamport rule: every inbound-triggered action advances the clock
// strictly past the sender's send-time.
func (c *Clock) Observe(incoming int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if incoming > c.ts {
		c.ts = incoming
	}
	c.ts++
	return c.ts
}

// Read returns the current value without advancing the clock.
func (c *Clock) Read() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ts
}
