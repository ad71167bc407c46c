package systems

import (
	"math"
	"testing"
	"time"

	"github.com/goldenmunch/attract/components"
	"github.com/goldenmunch/attract/engine"
)

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
		{-6, -6 + 2*math.Pi},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := NormalizeAngle(math.NaN()); got != 0 {
		t.Errorf("NormalizeAngle(NaN) = %v, want 0", got)
	}
}

func TestAngleWrapTurnsShortWay(t *testing.T) {
	diff := NormalizeAngle(-3.0 - 3.0)
	if math.Abs(diff-(2*math.Pi-6)) > 1e-9 {
		t.Fatalf("diff = %v, want %v", diff, 2*math.Pi-6)
	}
	if math.Abs(diff) > 0.3 {
		t.Fatalf("turn of %v rad takes the long way", diff)
	}

	// Heading 3.0 toward a target behind-left on bearing -3.0 turns positive
	st := newTestState(t, 1)
	st.Pursuer.X, st.Pursuer.Y = 400, 300
	st.Pursuer.Heading = 3.0
	tx := 400 + 100*math.Cos(-3.0)
	ty := 300 + 100*math.Sin(-3.0)
	st.BeginTick(0)
	seek(st, tx, ty, 1)

	wantHeading := NormalizeAngle(3.0 + diff*st.Tuning.Pursuer.TurnRate)
	if math.Abs(st.Pursuer.Heading-wantHeading) > 1e-6 {
		t.Errorf("heading = %v, want %v", st.Pursuer.Heading, wantHeading)
	}
}

func TestNearest(t *testing.T) {
	p := &components.Pursuer{X: 100, Y: 100}
	if Nearest(p, nil) != -1 {
		t.Fatal("empty set must report -1")
	}
	set := []components.Collectible{
		{ID: 1, X: 400, Y: 400},
		{ID: 2, X: 120, Y: 90},
		{ID: 3, X: 50, Y: 300},
	}
	if got := Nearest(p, set); got != 1 {
		t.Errorf("Nearest = %d, want 1", got)
	}
}

func TestPursuitScenario(t *testing.T) {
	for _, fc := range frameCases {
		t.Run(fc.name, func(t *testing.T) {
			st := newMotionState(t, 1, fc.scaled)
			st.Pursuer.X, st.Pursuer.Y = 100, 100
			st.Pursuer.Radius = 40
			st.Pursuer.Speed = 3
			st.Pursuer.Heading = 0
			st.AddCollectible(components.Collectible{ID: st.NextID(), X: 700, Y: 500, Size: 40})

			rule := defaultRule()
			sys := NewPursuerSystem(rule)
			want := rule.Points(40)

			prev := st.Pursuer.DistanceTo(700, 500)
			for i := 0; i < 2000; i++ {
				st.BeginTick(time.Duration(i) * fc.frame)
				sys.Update(st)

				if st.Pursuer.Mode != components.ModeSeeking && len(st.Collectibles) > 0 {
					t.Fatalf("tick %d: mode %v with a live target", i, st.Pursuer.Mode)
				}
				if len(st.Collectibles) == 0 {
					if st.Score != want {
						t.Fatalf("score = %d, want %d", st.Score, want)
					}
					if prev >= 60 {
						t.Fatalf("consumed from %.2f away", prev)
					}
					return
				}

				d := st.Pursuer.DistanceTo(700, 500)
				if d >= prev {
					t.Fatalf("tick %d: distance %.4f did not decrease from %.4f", i, d, prev)
				}
				prev = d
				assertContained(t, st, i)
			}
			t.Fatal("collectible never consumed")
		})
	}
}

func TestPursuitReachesAdjacentTargets(t *testing.T) {
	// Targets beside or behind the pursuer must not be circled forever
	targets := [][2]float64{{400, 340}, {400, 380}, {400, 260}, {380, 300}, {440, 300}}
	for _, fc := range frameCases {
		t.Run(fc.name, func(t *testing.T) {
			for _, tg := range targets {
				st := newMotionState(t, 1, fc.scaled)
				st.Pursuer.X, st.Pursuer.Y = 400, 300
				st.Pursuer.Heading = 0
				st.AddCollectible(components.Collectible{ID: st.NextID(), X: tg[0], Y: tg[1], Size: 36})
				sys := NewPursuerSystem(defaultRule())

				consumed := -1
				for i := 0; i < 60; i++ {
					st.BeginTick(time.Duration(i) * fc.frame)
					sys.Update(st)
					if len(st.Collectibles) == 0 {
						consumed = i
						break
					}
				}
				if consumed < 0 {
					t.Errorf("target (%v,%v) not consumed in 60 ticks, pursuer at (%.2f,%.2f)",
						tg[0], tg[1], st.Pursuer.X, st.Pursuer.Y)
				}
			}
		})
	}
}

func TestSeekSubstepTurn(t *testing.T) {
	st := newTestState(t, 1)
	st.Pursuer.X, st.Pursuer.Y = 400, 300
	st.Pursuer.Heading = 0
	st.BeginTick(0)

	// Two half steps turn exactly as far as one full step
	seek(st, 400, 400, 0.5)
	seek(st, 400, 400, 0.5)
	half := st.Pursuer.Heading

	st2 := newTestState(t, 1)
	st2.Pursuer.X, st2.Pursuer.Y = 400, 300
	st2.Pursuer.Heading = 0
	st2.BeginTick(0)
	seek(st2, 400, 400, 1)

	if math.Abs(half-st2.Pursuer.Heading) > 0.01 {
		t.Errorf("half-step heading %v, full-step heading %v", half, st2.Pursuer.Heading)
	}
	if half <= 0 || half >= math.Pi/2 {
		t.Errorf("heading %v should turn part way toward pi/2", half)
	}
}

func TestWanderScenario(t *testing.T) {
	st := newTestState(t, 42)
	sys := NewPursuerSystem(defaultRule())
	initial := st.Pursuer.Heading
	changed := false

	for i := 0; i < 1000; i++ {
		st.BeginTick(time.Duration(i) * frame)
		sys.Update(st)
		if st.Pursuer.Mode != components.ModeWandering {
			t.Fatalf("tick %d: mode %v with no collectibles", i, st.Pursuer.Mode)
		}
		if st.Pursuer.Heading != initial {
			changed = true
		}
		assertContained(t, st, i)
	}
	if !changed {
		t.Error("heading never changed while wandering")
	}
}

func TestWanderReflectsAtBoundary(t *testing.T) {
	st := newTestState(t, 1)
	st.Tuning.Pursuer.WanderTurnChance = 0
	r := st.Pursuer.Radius

	st.Pursuer.X, st.Pursuer.Y = st.Arena.Width-r-0.1, 300
	st.Pursuer.Heading = 0
	st.BeginTick(0)
	wander(st)
	if math.Abs(st.Pursuer.Heading-math.Pi) > 1e-9 {
		t.Errorf("horizontal hit heading = %v, want pi", st.Pursuer.Heading)
	}

	st.Pursuer.X, st.Pursuer.Y = 400, r+0.1
	st.Pursuer.Heading = -math.Pi / 2
	wander(st)
	if math.Abs(st.Pursuer.Heading-math.Pi/2) > 1e-9 {
		t.Errorf("vertical hit heading = %v, want pi/2", st.Pursuer.Heading)
	}
	assertContained(t, st, 0)
}

func TestSingleConsumptionPerTick(t *testing.T) {
	st := newTestState(t, 1)
	st.Pursuer.X, st.Pursuer.Y = 400, 300
	for i := 0; i < 5; i++ {
		st.AddCollectible(components.Collectible{ID: st.NextID(), X: 400, Y: 300, Size: 30})
	}
	sys := NewPursuerSystem(defaultRule())

	for i := 0; i < 5; i++ {
		before := len(st.Collectibles)
		st.BeginTick(time.Duration(i) * frame)
		sys.Update(st)
		if removed := before - len(st.Collectibles); removed != 1 {
			t.Fatalf("tick %d removed %d collectibles, want 1", i, removed)
		}
	}
	if st.Score != 5*defaultRule().Points(30) {
		t.Errorf("score = %d", st.Score)
	}
}

func TestConsumptionBurstAndEvent(t *testing.T) {
	st := newTestState(t, 1)
	st.Pursuer.X, st.Pursuer.Y = 400, 300
	c := components.Collectible{ID: st.NextID(), X: 405, Y: 300, Size: 36}
	st.AddCollectible(c)

	st.BeginTick(0)
	NewPursuerSystem(defaultRule()).Update(st)

	if len(st.Particles) != st.Tuning.Particles.Count {
		t.Fatalf("particles = %d, want %d", len(st.Particles), st.Tuning.Particles.Count)
	}
	for _, p := range st.Particles {
		if p.X != c.X || p.Y != c.Y {
			t.Fatalf("particle born at (%v,%v), want contact point", p.X, p.Y)
		}
	}
	evs := st.DrainEvents()
	if len(evs) != 1 || evs[0].Type != engine.EventCollectibleConsumed {
		t.Fatalf("events = %+v", evs)
	}
	if evs[0].Points != 17 || evs[0].Score != 17 || evs[0].Collectible.ID != c.ID {
		t.Errorf("consumed event = %+v", evs[0])
	}
}

func TestMouthToggleInterval(t *testing.T) {
	st := newTestState(t, 1)
	st.Tuning.Pursuer.WanderTurnChance = 0
	sys := NewPursuerSystem(defaultRule())

	st.BeginTick(time.Second)
	sys.Update(st)
	open := st.Pursuer.MouthOpen

	st.BeginTick(time.Second + 100*time.Millisecond)
	sys.Update(st)
	if st.Pursuer.MouthOpen != open {
		t.Fatal("mouth toggled before its interval")
	}

	st.BeginTick(time.Second + 160*time.Millisecond)
	sys.Update(st)
	if st.Pursuer.MouthOpen == open {
		t.Fatal("mouth did not toggle after its interval")
	}
}

func TestMouthChompsFasterNearTarget(t *testing.T) {
	st := newTestState(t, 1)
	st.Pursuer.X, st.Pursuer.Y = 400, 300
	// Outside the collision threshold, inside chomp range
	st.AddCollectible(components.Collectible{ID: st.NextID(), X: 450, Y: 300, Size: 30})
	sys := NewPursuerSystem(defaultRule())
	st.Tuning.Pursuer.Speed = 0
	st.Pursuer.Speed = 0

	st.BeginTick(time.Second)
	sys.Update(st)
	open := st.Pursuer.MouthOpen

	st.BeginTick(time.Second + 130*time.Millisecond)
	sys.Update(st)
	if st.Pursuer.MouthOpen == open {
		t.Fatal("chomp interval not applied near target")
	}
}

func TestNudgeStaysSeeking(t *testing.T) {
	st := newTestState(t, 8)
	st.Tuning.Pursuer.NudgeChance = 0.35
	st.Pursuer.X, st.Pursuer.Y = 100, 100
	st.AddCollectible(components.Collectible{ID: st.NextID(), X: 700, Y: 500, Size: 40})
	sys := NewPursuerSystem(defaultRule())

	for i := 0; i < 200 && len(st.Collectibles) > 0; i++ {
		st.BeginTick(time.Duration(i) * frame)
		sys.Update(st)
		if len(st.Collectibles) > 0 && st.Pursuer.Mode != components.ModeSeeking {
			t.Fatalf("tick %d: nudge produced mode %v", i, st.Pursuer.Mode)
		}
		assertContained(t, st, i)
	}
}

func TestFullPipelineInvariants(t *testing.T) {
	for _, fc := range frameCases {
		t.Run(fc.name, func(t *testing.T) {
			for seed := int64(1); seed <= 5; seed++ {
				pipelineInvariants(t, seed, fc.scaled, fc.frame)
			}
		})
	}
}

func pipelineInvariants(t *testing.T, seed int64, scaled bool, base time.Duration) {
	t.Helper()
	st := newMotionState(t, seed, scaled)
	bridge := engine.NewBridge()
	rule := defaultRule()
	p := NewPipeline(rule, bridge)

	score := 0
	ts := time.Duration(0)
	for i := 0; i < 6000; i++ {
		// Irregular frame pacing
		ts += base + time.Duration(i%7)*time.Millisecond
		runTick(st, p, ts)

		if len(st.Collectibles) > st.Tuning.Spawner.Cap {
			t.Fatalf("seed %d tick %d: population %d over cap", seed, i, len(st.Collectibles))
		}
		assertContained(t, st, i)
		if st.Score < score {
			t.Fatalf("seed %d tick %d: score decreased %d -> %d", seed, i, score, st.Score)
		}

		consumed := 0
		gained := 0
		for _, ev := range st.DrainEvents() {
			if ev.Type != engine.EventCollectibleConsumed {
				continue
			}
			consumed++
			gained += ev.Points
			if ev.Points != rule.Points(ev.Collectible.Size) {
				t.Fatalf("points %d for size %.2f", ev.Points, ev.Collectible.Size)
			}
		}
		if consumed > 1 {
			t.Fatalf("seed %d tick %d: %d consumptions in one tick", seed, i, consumed)
		}
		if st.Score != score+gained {
			t.Fatalf("seed %d tick %d: score %d, want %d", seed, i, st.Score, score+gained)
		}
		score = st.Score

		for _, pt := range st.Particles {
			if pt.Life <= 0 {
				t.Fatalf("dead particle retained: %+v", pt)
			}
		}
	}
	if score == 0 {
		t.Errorf("seed %d: nothing consumed in 6000 ticks", seed)
	}
	if snap := bridge.Snapshot(); snap.Score > st.Score {
		t.Errorf("bridge score %d ahead of internal %d", snap.Score, st.Score)
	}
}
