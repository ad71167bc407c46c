package systems

import (
	"github.com/goldenmunch/attract/components"
	"github.com/goldenmunch/attract/engine"
	"github.com/goldenmunch/attract/parameter"
)

// SpawnerSystem places collectibles on a randomized interval under the cap
// and fires the staggered seed spawns queued at the first valid tick
type SpawnerSystem struct{}

// NewSpawnerSystem creates the spawner
func NewSpawnerSystem() *SpawnerSystem {
	return &SpawnerSystem{}
}

// Name returns system's name
func (s *SpawnerSystem) Name() string {
	return "spawner"
}

// Priority returns the system's priority
func (s *SpawnerSystem) Priority() int {
	return parameter.PrioritySpawner
}

// Update runs seed timers, clears finished entry animations and spawns on interval
func (s *SpawnerSystem) Update(st *engine.State) {
	now := st.Now
	sp := st.Tuning.Spawner

	// Seed spawns respect the cap but leave the interval clock alone
	for _, t := range st.Timers.Due(now) {
		if t.Kind != engine.TimerSeedSpawn {
			continue
		}
		if len(st.Collectibles) < sp.Cap {
			s.SpawnOne(st)
		}
	}

	for i := range st.Collectibles {
		c := &st.Collectibles[i]
		if c.Spawning && now-c.SpawnedAt >= sp.SpawnAnimation {
			c.Spawning = false
		}
	}

	if !engine.Due(now, st.Throttle.LastSpawn, st.Throttle.SpawnInterval) {
		return
	}
	if len(st.Collectibles) >= sp.Cap {
		return
	}
	s.SpawnOne(st)
	st.Throttle.LastSpawn = now
	st.Throttle.SpawnInterval = st.RandomDuration(sp.IntervalMin, sp.IntervalMax)
}

// SpawnOne adds a single collectible unconditionally and returns it
func (s *SpawnerSystem) SpawnOne(st *engine.State) components.Collectible {
	sp := st.Tuning.Spawner
	x, y := s.place(st)

	c := components.Collectible{
		ID:        st.NextID(),
		X:         x,
		Y:         y,
		Size:      st.RandomRange(sp.SizeMin, sp.SizeMax),
		Variant:   st.RandomIndex(sp.PaletteVariants),
		Spawning:  true,
		SpawnedAt: st.Now,
	}
	st.AddCollectible(c)
	st.Emit(engine.Event{Type: engine.EventCollectibleSpawned, Collectible: c})
	return c
}

// place reject-samples inside the margin inset, preferring points away from
// the pursuer; the last candidate is accepted when every attempt is too close
func (s *SpawnerSystem) place(st *engine.State) (float64, float64) {
	sp := st.Tuning.Spawner
	minX, maxX := insetRange(sp.Margin, st.Arena.Width)
	minY, maxY := insetRange(sp.Margin, st.Arena.Height)

	var x, y float64
	attempts := sp.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}
	for i := 0; i < attempts; i++ {
		x = st.RandomRange(minX, maxX)
		y = st.RandomRange(minY, maxY)
		if st.Pursuer.DistanceTo(x, y) >= sp.MinSeparation {
			break
		}
	}
	return x, y
}

// insetRange collapses to the centre when the margin leaves no room
func insetRange(margin, dim float64) (float64, float64) {
	lo, hi := margin, dim-margin
	if hi < lo {
		return dim / 2, dim / 2
	}
	return lo, hi
}
