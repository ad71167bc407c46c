package systems

import (
	"math"

	"github.com/goldenmunch/attract/components"
	"github.com/goldenmunch/attract/engine"
	"github.com/goldenmunch/attract/parameter"
	"github.com/goldenmunch/attract/scoring"
)

// PursuerSystem runs the agent's seek/wander state machine, mouth animation
// and consumption
type PursuerSystem struct {
	rule scoring.Rule
}

// NewPursuerSystem creates the pursuer scoring consumptions with rule
func NewPursuerSystem(rule scoring.Rule) *PursuerSystem {
	return &PursuerSystem{rule: rule}
}

// Name returns system's name
func (s *PursuerSystem) Name() string {
	return "pursuer"
}

// Priority returns the system's priority
func (s *PursuerSystem) Priority() int {
	return parameter.PriorityPursuer
}

// Update advances the pursuer one tick
func (s *PursuerSystem) Update(st *engine.State) {
	p := &st.Pursuer
	tn := st.Tuning.Pursuer

	target := Nearest(p, st.Collectibles)

	interval := tn.MouthInterval
	if target >= 0 {
		c := &st.Collectibles[target]
		if p.DistanceTo(c.X, c.Y) < tn.ChompRange*p.Radius {
			interval = tn.ChompInterval
		}
	}
	if engine.Due(st.Now, st.Throttle.LastMouthToggle, interval) {
		p.MouthOpen = !p.MouthOpen
		st.Throttle.LastMouthToggle = st.Now
	}

	if target < 0 {
		p.Mode = components.ModeWandering
		wander(st)
		return
	}

	p.Mode = components.ModeSeeking
	c := st.Collectibles[target]
	if tn.NudgeChance > 0 && !st.Chance(tn.NudgeChance) {
		wander(st)
		s.collide(st, c)
		return
	}

	// Sub-steps of at most one reference frame keep the turning circle fixed
	n := 1
	if st.Step > 1 {
		n = int(math.Ceil(st.Step))
	}
	dt := st.Step / float64(n)
	for i := 0; i < n; i++ {
		seek(st, c.X, c.Y, dt)
		if s.collide(st, c) {
			return
		}
	}
}

// collide consumes the tick's target on contact; at most one per tick
func (s *PursuerSystem) collide(st *engine.State, c components.Collectible) bool {
	p := &st.Pursuer
	threshold := (p.Radius + c.Radius()) / st.Tuning.Pursuer.CollisionDivisor
	if p.DistanceTo(c.X, c.Y) >= threshold {
		return false
	}
	if !st.RemoveCollectible(c.ID) {
		return false
	}

	points := 0
	if s.rule != nil {
		points = s.rule.Points(c.Size)
	}
	st.Score += points
	Burst(st, c.X, c.Y)
	st.Emit(engine.Event{
		Type:        engine.EventCollectibleConsumed,
		Collectible: c,
		Points:      points,
		Score:       st.Score,
	})
	return true
}

// Nearest returns the index of the collectible closest to p, or -1
func Nearest(p *components.Pursuer, set []components.Collectible) int {
	best := -1
	bestDist := math.Inf(1)
	for i := range set {
		d := p.DistanceTo(set[i].X, set[i].Y)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// NormalizeAngle wraps a into (-pi, pi]
func NormalizeAngle(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// seek turns toward (tx, ty) by a fraction of the shortest-way error, then
// advances dt reference frames and clamps to the arena
// At dt 1 the turn is exactly TurnRate of the error
func seek(st *engine.State, tx, ty, dt float64) {
	p := &st.Pursuer
	bearing := math.Atan2(ty-p.Y, tx-p.X)
	diff := NormalizeAngle(bearing - p.Heading)
	turn := st.Tuning.Pursuer.TurnRate
	if dt != 1 {
		turn = 1 - math.Pow(1-turn, dt)
	}
	p.Heading = NormalizeAngle(p.Heading + diff*turn)

	p.Advance(p.Speed * dt)
	p.X, p.Y = st.Arena.Clamp(p.X, p.Y, p.Radius)
}

// wander drifts at reduced speed, occasionally picking a new heading and
// reflecting off the arena edges
func wander(st *engine.State) {
	p := &st.Pursuer
	tn := st.Tuning.Pursuer

	if st.Chance(tn.WanderTurnChance) {
		p.Heading = NormalizeAngle(st.RandomAngle())
	}
	p.Advance(p.Speed * tn.WanderSpeed * st.Step)

	r := p.Radius
	w, h := st.Arena.Width, st.Arena.Height
	if p.X < r || p.X > w-r {
		p.Heading = NormalizeAngle(math.Pi - p.Heading)
	}
	if p.Y < r || p.Y > h-r {
		p.Heading = NormalizeAngle(-p.Heading)
	}
	p.X, p.Y = st.Arena.Clamp(p.X, p.Y, r)
}
