package systems

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/goldenmunch/attract/engine"
	"github.com/goldenmunch/attract/parameter"
	"github.com/goldenmunch/attract/scoring"
)

const frame = 16 * time.Millisecond

// frameCases covers the shipped elapsed-time scaling at 60, 30 and 20 fps
// plus the unscaled reference
var frameCases = []struct {
	name   string
	scaled bool
	frame  time.Duration
}{
	{"unscaled", false, frame},
	{"scaled16ms", true, 16 * time.Millisecond},
	{"scaled33ms", true, 33 * time.Millisecond},
	{"scaled50ms", true, 50 * time.Millisecond},
}

// newTestState returns a seeded state in an 800x600 arena with unscaled motion
func newTestState(t *testing.T, seed int64) *engine.State {
	t.Helper()
	return newMotionState(t, seed, false)
}

// newMotionState is newTestState with elapsed-time scaling set as given
func newMotionState(t *testing.T, seed int64, scaled bool) *engine.State {
	t.Helper()
	tn := parameter.Default()
	tn.Motion.ScaleByElapsed = scaled
	st := engine.NewState(tn, rand.New(rand.NewSource(seed)))
	st.Resize(800, 600)
	return st
}

func defaultRule() scoring.Rule {
	return scoring.FromTuning(parameter.Default().Score)
}

// runTick mirrors the simulation's update ordering for one frame
func runTick(st *engine.State, p *engine.Pipeline, now time.Duration) {
	st.BeginTick(now)
	st.SeedOnce(now)
	p.Update(st)
}

func assertContained(t *testing.T, st *engine.State, tick int) {
	t.Helper()
	p := st.Pursuer
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Heading) {
		t.Fatalf("tick %d: NaN in pursuer %+v", tick, p)
	}
	if p.X < p.Radius || p.X > st.Arena.Width-p.Radius || p.Y < p.Radius || p.Y > st.Arena.Height-p.Radius {
		t.Fatalf("tick %d: pursuer (%.2f,%.2f) outside arena %vx%v", tick, p.X, p.Y, st.Arena.Width, st.Arena.Height)
	}
}
