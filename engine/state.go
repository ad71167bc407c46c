package engine

import (
	"math/rand"
	"time"

	"github.com/goldenmunch/attract/components"
	"github.com/goldenmunch/attract/parameter"
)

// Throttle holds the last-event timestamps that gate low-frequency work
// Comparisons use elapsed host time, never tick counts
type Throttle struct {
	LastTick           time.Duration
	LastMouthToggle    time.Duration
	LastSpawn          time.Duration
	SpawnInterval      time.Duration // redrawn after every interval spawn
	LastMilestoneCheck time.Duration
	LastSync           time.Duration
}

// State is the single owned aggregate of the simulation, mutated in place once per tick
// Not safe for concurrent use; only the scheduler's tick touches it
type State struct {
	Arena        components.Arena
	Pursuer      components.Pursuer
	Collectibles []components.Collectible
	Particles    []components.Particle
	Milestone    components.MilestoneEffect
	Score        int

	Throttle Throttle
	Timers   TimerQueue
	Tuning   parameter.Tuning
	Rand     *rand.Rand

	// Now is the timestamp of the tick in progress
	Now time.Duration
	// Step scales per-tick displacement by elapsed time
	Step  float64
	Ticks uint64

	startedAt time.Duration
	ticked    bool
	seeded    bool
	nextID    uint64
	events    []Event
}

// NewState creates the aggregate with the pursuer at its default placement
// rng may be nil to use the package-level source
func NewState(tuning parameter.Tuning, rng *rand.Rand) *State {
	s := &State{
		Tuning: tuning,
		Rand:   rng,
		Step:   1,
	}
	s.Pursuer = components.Pursuer{
		X:         tuning.Pursuer.StartX,
		Y:         tuning.Pursuer.StartY,
		Speed:     tuning.Pursuer.Speed,
		Radius:    tuning.Pursuer.Radius,
		MouthOpen: true,
		Mode:      components.ModeWandering,
		AtDefault: true,
	}
	s.Throttle.SpawnInterval = s.RandomDuration(tuning.Spawner.IntervalMin, tuning.Spawner.IntervalMax)
	return s
}

// BeginTick records the tick timestamp and derives the motion step
func (s *State) BeginTick(now time.Duration) {
	m := s.Tuning.Motion
	s.Step = 1
	if s.ticked && m.ScaleByElapsed && m.ReferenceFrame > 0 {
		step := float64(now-s.Throttle.LastTick) / float64(m.ReferenceFrame)
		if step < 0 {
			step = 0
		}
		if step > m.MaxStep {
			step = m.MaxStep
		}
		s.Step = step
	}
	if !s.ticked {
		s.startedAt = now
		s.ticked = true
	}
	s.Now = now
	s.Throttle.LastTick = now
	s.Ticks++
}

// Elapsed returns simulation time since the first valid tick
func (s *State) Elapsed() time.Duration {
	if !s.ticked {
		return 0
	}
	return s.Now - s.startedAt
}

// SeedOnce schedules the initial staggered spawns on the first call and
// starts the interval spawner's clock at now
func (s *State) SeedOnce(now time.Duration) {
	if s.seeded {
		return
	}
	s.seeded = true
	s.Throttle.LastSpawn = now
	sp := s.Tuning.Spawner
	for i := 0; i < sp.SeedCount; i++ {
		s.Timers.Schedule(now+time.Duration(i)*sp.SeedStagger, TimerSeedSpawn)
	}
}

// NextID returns a fresh collectible id
func (s *State) NextID() uint64 {
	s.nextID++
	return s.nextID
}

// Emit queues an event for dispatch after Update
func (s *State) Emit(ev Event) {
	if ev.At == 0 {
		ev.At = s.Now
	}
	s.events = append(s.events, ev)
}

// DrainEvents returns and clears queued events
func (s *State) DrainEvents() []Event {
	ev := s.events
	s.events = nil
	return ev
}

// AddCollectible inserts c into the live set
func (s *State) AddCollectible(c components.Collectible) {
	s.Collectibles = append(s.Collectibles, c)
}

// FindCollectible returns the index of id or -1
func (s *State) FindCollectible(id uint64) int {
	for i := range s.Collectibles {
		if s.Collectibles[i].ID == id {
			return i
		}
	}
	return -1
}

// RemoveCollectible deletes id from the unordered set
func (s *State) RemoveCollectible(id uint64) bool {
	i := s.FindCollectible(id)
	if i < 0 {
		return false
	}
	last := len(s.Collectibles) - 1
	s.Collectibles[i] = s.Collectibles[last]
	s.Collectibles = s.Collectibles[:last]
	return true
}

// Resize applies new arena bounds
// The first resize with usable bounds re-centres the pursuer if it never left
// its default placement
// Collectibles whose centre falls outside the new bounds are discarded
func (s *State) Resize(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.Arena = components.Arena{Width: width, Height: height}

	p := &s.Pursuer
	if p.AtDefault && s.Arena.Valid() {
		if p.X == s.Tuning.Pursuer.StartX && p.Y == s.Tuning.Pursuer.StartY {
			p.X, p.Y = s.Arena.Center()
		}
		p.AtDefault = false
	}

	kept := s.Collectibles[:0]
	for _, c := range s.Collectibles {
		if s.Arena.Contains(c.X, c.Y) {
			kept = append(kept, c)
		}
	}
	s.Collectibles = kept
}

// Reset clears score and every transient population; arena and pursuer stay
func (s *State) Reset() {
	s.Score = 0
	s.Collectibles = nil
	s.Particles = nil
	s.Milestone = components.MilestoneEffect{}
	s.events = nil
}
