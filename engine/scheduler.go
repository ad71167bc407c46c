package engine

import "time"

// FrameScheduler drives update/render from host frame callbacks
// All methods must be called on the host loop goroutine
type FrameScheduler struct {
	host   FrameHost
	update func(ts time.Duration)
	render func()

	running    bool
	pending    FrameHandle
	hasPending bool
	inTick     bool

	ticks    uint64
	lastTick time.Duration
}

// NewFrameScheduler binds the per-tick work to a host
func NewFrameScheduler(host FrameHost, update func(ts time.Duration), render func()) *FrameScheduler {
	return &FrameScheduler{
		host:   host,
		update: update,
		render: render,
	}
}

// Start begins requesting frames; no-op when already running
func (s *FrameScheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	// A tick in progress re-arms on return
	if !s.inTick {
		s.request()
	}
}

// Stop cancels the pending frame and marks the scheduler idle
// Safe before Start and on repeated calls
func (s *FrameScheduler) Stop() {
	s.running = false
	if s.hasPending {
		s.host.CancelFrame(s.pending)
		s.hasPending = false
	}
}

// Running reports the authoritative running flag
func (s *FrameScheduler) Running() bool {
	return s.running
}

// Ticks returns the number of completed ticks
func (s *FrameScheduler) Ticks() uint64 {
	return s.ticks
}

// LastTick returns the timestamp of the most recent completed tick
func (s *FrameScheduler) LastTick() time.Duration {
	return s.lastTick
}

func (s *FrameScheduler) request() {
	s.pending = s.host.RequestFrame(s.tick)
	s.hasPending = true
}

func (s *FrameScheduler) tick(ts time.Duration) {
	s.hasPending = false
	if !s.running {
		return
	}

	s.inTick = true
	s.update(ts)
	s.render()
	s.inTick = false

	s.ticks++
	s.lastTick = ts

	// Update or render may have stopped the scheduler
	if s.running && !s.hasPending {
		s.request()
	}
}
