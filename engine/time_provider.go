package engine

import "time"

// TimeProvider supplies wall-clock readings to hosts that derive frame timestamps
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock; time.Now carries a monotonic reading
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a provider backed by time.Now
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// FrameClock converts provider readings into timestamps relative to an epoch
// Timestamps never decrease, even if the provider steps backwards
type FrameClock struct {
	provider TimeProvider
	epoch    time.Time
	last     time.Duration
}

// NewFrameClock starts a clock whose zero is the provider's current reading
func NewFrameClock(provider TimeProvider) *FrameClock {
	return &FrameClock{provider: provider, epoch: provider.Now()}
}

// Timestamp returns the elapsed time since the epoch
func (c *FrameClock) Timestamp() time.Duration {
	ts := c.provider.Now().Sub(c.epoch)
	if ts < c.last {
		return c.last
	}
	c.last = ts
	return ts
}
