package engine

import "time"

// FrameCallback receives the host timestamp for one frame
type FrameCallback func(ts time.Duration)

// FrameHandle identifies a pending frame request
type FrameHandle uint64

// FrameHost is the platform's per-frame callback primitive
// Implementations invoke callbacks serially on a single goroutine and pass
// monotonically non-decreasing timestamps
type FrameHost interface {
	RequestFrame(cb FrameCallback) FrameHandle
	CancelFrame(h FrameHandle)
}

// ManualHost is a FrameHost driven explicitly, used by tests and headless runs
type ManualHost struct {
	next     FrameHandle
	pending  FrameHandle
	callback FrameCallback
	requests int
}

// NewManualHost creates a host with no pending frame
func NewManualHost() *ManualHost {
	return &ManualHost{}
}

// RequestFrame replaces any pending request
func (h *ManualHost) RequestFrame(cb FrameCallback) FrameHandle {
	h.next++
	h.pending = h.next
	h.callback = cb
	h.requests++
	return h.pending
}

// CancelFrame drops the request if it is still pending; stale handles are ignored
func (h *ManualHost) CancelFrame(handle FrameHandle) {
	if handle == h.pending {
		h.pending = 0
		h.callback = nil
	}
}

// Pending reports whether a frame is waiting to fire
func (h *ManualHost) Pending() bool {
	return h.callback != nil
}

// Requests returns how many frames have been requested so far
func (h *ManualHost) Requests() int {
	return h.requests
}

// Fire runs the pending callback with ts; returns false when nothing was pending
func (h *ManualHost) Fire(ts time.Duration) bool {
	cb := h.callback
	if cb == nil {
		return false
	}
	h.pending = 0
	h.callback = nil
	cb(ts)
	return true
}

// Run fires frames every interval starting at from until none is pending or
// n frames ran; returns the timestamp after the last frame
func (h *ManualHost) Run(from, interval time.Duration, n int) time.Duration {
	ts := from
	for i := 0; i < n; i++ {
		if !h.Fire(ts) {
			break
		}
		ts += interval
	}
	return ts
}
