package engine

import (
	"sync"
	"time"
)

// ManualClock is a TimeProvider that moves only when its owner says so
// Hosts under test read frame timestamps from it instead of the wall clock
type ManualClock struct {
	mu     sync.RWMutex
	epoch  time.Time
	offset time.Duration
}

// NewManualClock creates a clock reading epoch
func NewManualClock(epoch time.Time) *ManualClock {
	return &ManualClock{epoch: epoch}
}

// Now returns epoch plus the accumulated offset
func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.epoch.Add(c.offset)
}

// Offset returns the distance from the epoch
func (c *ManualClock) Offset() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offset
}

// Advance moves forward by d and returns the new offset
func (c *ManualClock) Advance(d time.Duration) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset += d
	return c.offset
}

// Rewind steps back by d, as a wall clock does after an NTP correction
func (c *ManualClock) Rewind(d time.Duration) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offset -= d
	return c.offset
}
