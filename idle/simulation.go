// Package idle assembles the attract loop: state, systems, scheduler, stage and bridge
package idle

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/goldenmunch/attract/engine"
	"github.com/goldenmunch/attract/parameter"
	"github.com/goldenmunch/attract/render"
	"github.com/goldenmunch/attract/scoring"
	"github.com/goldenmunch/attract/systems"
)

// ErrNoHost is returned when Options carries no frame host
var ErrNoHost = errors.New("idle: frame host required")

// Options configures a Simulation
type Options struct {
	Tuning parameter.Tuning
	Host   engine.FrameHost

	// Surface may be nil or set later with SetSurface; frames without one skip rendering
	Surface render.Surface
	Stage   render.StageOptions

	// Rule defaults to the tuning's score formula
	Rule scoring.Rule

	// OnExit runs once, on the first activation, with ExitRoute
	ExitRoute string
	OnExit    func(route string)

	// Handlers receive routed events after each update, in order
	Handlers []engine.Handler

	Rand   *rand.Rand
	Logger *zap.Logger
}

// Simulation owns one attract loop instance
// All methods except Snapshot must be called on the host loop goroutine
type Simulation struct {
	state     *engine.State
	bridge    *engine.Bridge
	router    *engine.Router
	pipeline  *engine.Pipeline
	scheduler *engine.FrameScheduler
	stage     *render.Stage
	surface   render.Surface
	log       *zap.Logger

	exitRoute string
	onExit    func(string)

	activated bool
	torn      bool
}

// New validates the tuning and wires the loop; it does not start it
func New(opts Options) (*Simulation, error) {
	if opts.Host == nil {
		return nil, ErrNoHost
	}
	if err := opts.Tuning.Validate(); err != nil {
		return nil, fmt.Errorf("idle: %w", err)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	rule := opts.Rule
	if rule == nil {
		rule = scoring.FromTuning(opts.Tuning.Score)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	sim := &Simulation{
		state:     engine.NewState(opts.Tuning, rng),
		bridge:    engine.NewBridge(),
		router:    engine.NewRouter(),
		stage:     render.NewStage(opts.Stage),
		surface:   opts.Surface,
		log:       log,
		exitRoute: opts.ExitRoute,
		onExit:    opts.OnExit,
	}
	sim.pipeline = systems.NewPipeline(rule, sim.bridge)
	sim.scheduler = engine.NewFrameScheduler(opts.Host, sim.update, sim.render)

	sim.router.Register(engine.HandlerFunc{
		Types: []engine.EventType{engine.EventMilestone},
		Fn: func(ev engine.Event) {
			sim.log.Info("milestone", zap.Int("thousands", ev.Thousands), zap.Int("score", ev.Score))
		},
	})
	for _, h := range opts.Handlers {
		sim.router.Register(h)
	}

	log.Debug("simulation created", zap.Strings("systems", sim.pipeline.Names()))
	return sim, nil
}

// Start begins requesting frames; no-op while running or after activation
func (s *Simulation) Start() {
	if s.activated || s.scheduler.Running() {
		return
	}
	s.torn = false
	s.scheduler.Start()
	s.bridge.Publish(engine.Capture(s.state, true))
	s.log.Info("simulation started")
}

// Stop pauses the loop; pending seed spawns survive
func (s *Simulation) Stop() {
	if !s.scheduler.Running() {
		return
	}
	s.scheduler.Stop()
	s.log.Info("simulation stopped", zap.Uint64("ticks", s.scheduler.Ticks()))
}

// Running reports whether frames are being scheduled
func (s *Simulation) Running() bool {
	return s.scheduler.Running()
}

// Activate handles the first user interaction: tear down and signal exit
// Later calls are ignored
func (s *Simulation) Activate() {
	if s.activated {
		return
	}
	s.activated = true
	s.log.Info("activated", zap.String("route", s.exitRoute), zap.Int("score", s.state.Score))
	s.Teardown()
	if s.onExit != nil {
		s.onExit(s.exitRoute)
	}
}

// Activated reports whether Activate has run
func (s *Simulation) Activated() bool {
	return s.activated
}

// Resize applies new arena bounds, observed on the next tick
func (s *Simulation) Resize(width, height float64) {
	s.state.Resize(width, height)
	s.log.Debug("arena resized",
		zap.Float64("width", s.state.Arena.Width),
		zap.Float64("height", s.state.Arena.Height),
		zap.Int("collectibles", len(s.state.Collectibles)))
}

// Reset clears score and transient populations and republishes the snapshot
func (s *Simulation) Reset() {
	s.state.Reset()
	s.bridge.Publish(engine.Capture(s.state, s.scheduler.Running()))
	s.log.Info("simulation reset")
}

// Teardown stops frames, drops pending seed spawns and publishes an inactive snapshot
// Safe to call repeatedly
func (s *Simulation) Teardown() {
	s.scheduler.Stop()
	s.state.Timers.Clear()
	if s.torn {
		return
	}
	s.torn = true
	s.bridge.Publish(engine.Capture(s.state, false))
	s.log.Info("simulation torn down",
		zap.Uint64("ticks", s.scheduler.Ticks()),
		zap.Int("score", s.state.Score))
}

// SetSurface replaces the drawing surface; nil disables rendering
func (s *Simulation) SetSurface(surface render.Surface) {
	s.surface = surface
}

// Snapshot returns the last published observable state; safe from any goroutine
func (s *Simulation) Snapshot() engine.Snapshot {
	return s.bridge.Snapshot()
}

// Bridge exposes the snapshot bridge for subscriptions
func (s *Simulation) Bridge() *engine.Bridge {
	return s.bridge
}

// State exposes the simulation aggregate to hosts and tests on the loop goroutine
func (s *Simulation) State() *engine.State {
	return s.state
}

// Register adds an event handler after construction
func (s *Simulation) Register(h engine.Handler) {
	s.router.Register(h)
}

func (s *Simulation) update(ts time.Duration) {
	// Unknown bounds skip the tick entirely, leaving throttles untouched
	if !s.state.Arena.Valid() {
		return
	}
	s.state.BeginTick(ts)
	s.state.SeedOnce(ts)
	s.pipeline.Update(s.state)
	s.router.Dispatch(s.state.DrainEvents())
}

func (s *Simulation) render() {
	if s.surface == nil || !s.state.Arena.Valid() {
		return
	}
	s.stage.Render(s.surface, s.state, s.bridge.Snapshot())
}
