package testutils

import (
	"sync"
	"time"
)

// Clock is a deterministic manual clock for tests. It implements
// ports.Clock; time only moves when Advance or Sleep is called. Safe for
// concurrent use so that concurrent-call tests can share one instance.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a clock at a fixed, non-zero base time.
func NewClock() *Clock {
	return &Clock{now: time.Unix(1_700_000_000, 0)}
}

// Now returns the current simulated time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Sleep advances the clock immediately, mimicking a blocking sleep from the
// computation's point of view.
func (c *Clock) Sleep(d time.Duration) {
	c.Advance(d)
}
