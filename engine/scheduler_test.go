package engine

import (
	"testing"
	"time"
)

type tickLog struct {
	calls []string
	stamp []time.Duration
}

func newLoggedScheduler(host FrameHost, log *tickLog) *FrameScheduler {
	return NewFrameScheduler(host,
		func(ts time.Duration) {
			log.calls = append(log.calls, "update")
			log.stamp = append(log.stamp, ts)
		},
		func() { log.calls = append(log.calls, "render") },
	)
}

func TestSchedulerUpdateBeforeRender(t *testing.T) {
	host := NewManualHost()
	var log tickLog
	s := newLoggedScheduler(host, &log)

	s.Start()
	host.Run(0, 16*time.Millisecond, 3)

	want := []string{"update", "render", "update", "render", "update", "render"}
	if len(log.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", log.calls, want)
	}
	for i := range want {
		if log.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", log.calls, want)
		}
	}
	if s.Ticks() != 3 {
		t.Errorf("ticks = %d, want 3", s.Ticks())
	}
	if s.LastTick() != 32*time.Millisecond {
		t.Errorf("last tick = %v, want 32ms", s.LastTick())
	}
}

func TestSchedulerStartIdempotent(t *testing.T) {
	host := NewManualHost()
	var log tickLog
	s := newLoggedScheduler(host, &log)

	s.Start()
	s.Start()
	s.Start()
	if host.Requests() != 1 {
		t.Fatalf("requests = %d, want 1", host.Requests())
	}
}

func TestSchedulerStopSafety(t *testing.T) {
	host := NewManualHost()
	var log tickLog
	s := newLoggedScheduler(host, &log)

	// Before start
	s.Stop()
	s.Stop()

	s.Start()
	host.Fire(0)
	s.Stop()
	s.Stop()

	if host.Pending() {
		t.Fatal("stop must cancel the pending frame")
	}
	if host.Fire(16 * time.Millisecond) {
		t.Fatal("no frame should fire after stop")
	}
	if s.Ticks() != 1 {
		t.Errorf("ticks = %d, want 1", s.Ticks())
	}
}

func TestSchedulerStopInsideTick(t *testing.T) {
	host := NewManualHost()
	var s *FrameScheduler
	updates := 0
	s = NewFrameScheduler(host,
		func(ts time.Duration) {
			updates++
			if updates == 2 {
				s.Stop()
			}
		},
		func() {},
	)

	s.Start()
	host.Run(0, 16*time.Millisecond, 10)

	if updates != 2 {
		t.Fatalf("updates = %d, want 2", updates)
	}
	if host.Pending() {
		t.Error("no frame may be requested after stopping inside a tick")
	}
}

func TestSchedulerStaleCallbackIgnored(t *testing.T) {
	host := NewManualHost()
	var log tickLog
	s := newLoggedScheduler(host, &log)

	s.Start()
	cb := host.callback
	s.Stop()

	// A host that already queued the frame delivers it anyway
	cb(5 * time.Millisecond)
	if len(log.calls) != 0 {
		t.Fatalf("stopped scheduler ran work: %v", log.calls)
	}
}

func TestSchedulerIrregularIntervals(t *testing.T) {
	host := NewManualHost()
	var log tickLog
	s := newLoggedScheduler(host, &log)
	s.Start()

	for _, ts := range []time.Duration{0, 5 * time.Millisecond, 90 * time.Millisecond, 91 * time.Millisecond, 400 * time.Millisecond} {
		if !host.Fire(ts) {
			t.Fatalf("frame at %v not pending", ts)
		}
	}
	if got := log.stamp[len(log.stamp)-1]; got != 400*time.Millisecond {
		t.Errorf("last stamp = %v, want 400ms", got)
	}
}
