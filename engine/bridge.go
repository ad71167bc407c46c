package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// Snapshot is the externally observable view of the simulation
// Every field is a value the internal state held at SyncedAt
type Snapshot struct {
	Score        int
	Collectibles int
	Active       bool
	Elapsed      time.Duration
	SyncedAt     time.Duration
}

// Bridge mirrors State into a separately stored snapshot
// Writes happen on the host loop; Snapshot may be read from any goroutine
type Bridge struct {
	current atomic.Pointer[Snapshot]

	mu        sync.Mutex
	listeners []func(Snapshot)
}

// NewBridge creates a bridge publishing an inactive zero snapshot
func NewBridge() *Bridge {
	b := &Bridge{}
	b.current.Store(&Snapshot{})
	return b
}

// Snapshot returns a copy of the last published snapshot
func (b *Bridge) Snapshot() Snapshot {
	return *b.current.Load()
}

// Subscribe registers fn to run after each publish, on the publishing goroutine
func (b *Bridge) Subscribe(fn func(Snapshot)) {
	b.mu.Lock()
	b.listeners = append(b.listeners, fn)
	b.mu.Unlock()
}

// Publish stores a copy of snap and notifies listeners
func (b *Bridge) Publish(snap Snapshot) {
	cp := snap
	b.current.Store(&cp)

	b.mu.Lock()
	listeners := b.listeners
	b.mu.Unlock()
	for _, fn := range listeners {
		fn(cp)
	}
}

// Capture builds a snapshot from the current state
func Capture(s *State, active bool) Snapshot {
	return Snapshot{
		Score:        s.Score,
		Collectibles: len(s.Collectibles),
		Active:       active,
		Elapsed:      s.Elapsed(),
		SyncedAt:     s.Now,
	}
}

// Due reports whether interval has strictly elapsed since last
func Due(now, last, interval time.Duration) bool {
	return now-last > interval
}
