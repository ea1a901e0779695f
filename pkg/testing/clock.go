package testing

import (
	"sync"
	"time"
)

// FakeClock provides controllable time for deterministic frame tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu   sync.Mutex
	now  time.Time
	last time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &FakeClock{now: epoch, last: epoch}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Tick returns the seconds elapsed since the previous Tick and marks the
// current time as the new reference.
func (c *FakeClock) Tick() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	dt := c.now.Sub(c.last)
	c.last = c.now
	return float32(dt.Seconds())
}
