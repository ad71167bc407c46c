package parameter

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTuning is wrapped by every validation failure
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning groups every knob of the attract loop
// Variants of the idle screen differ only in these values
type Tuning struct {
	Pursuer   PursuerTuning   `toml:"pursuer" yaml:"pursuer"`
	Spawner   SpawnerTuning   `toml:"spawner" yaml:"spawner"`
	Score     ScoreTuning     `toml:"score" yaml:"score"`
	Particles ParticleTuning  `toml:"particles" yaml:"particles"`
	Milestone MilestoneTuning `toml:"milestone" yaml:"milestone"`
	Bridge    BridgeTuning    `toml:"bridge" yaml:"bridge"`
	Motion    MotionTuning    `toml:"motion" yaml:"motion"`
}

// PursuerTuning controls the agent's body, steering and mouth animation
type PursuerTuning struct {
	StartX           float64       `toml:"start_x" yaml:"start_x"`
	StartY           float64       `toml:"start_y" yaml:"start_y"`
	Radius           float64       `toml:"radius" yaml:"radius"`
	Speed            float64       `toml:"speed" yaml:"speed"`
	TurnRate         float64       `toml:"turn_rate" yaml:"turn_rate"`
	WanderSpeed      float64       `toml:"wander_speed" yaml:"wander_speed"` // fraction of Speed
	WanderTurnChance float64       `toml:"wander_turn_chance" yaml:"wander_turn_chance"`
	NudgeChance      float64       `toml:"nudge_chance" yaml:"nudge_chance"` // 0 disables nudge blending
	CollisionDivisor float64       `toml:"collision_divisor" yaml:"collision_divisor"`
	MouthInterval    time.Duration `toml:"mouth_interval" yaml:"mouth_interval"`
	ChompInterval    time.Duration `toml:"chomp_interval" yaml:"chomp_interval"`
	ChompRange       float64       `toml:"chomp_range" yaml:"chomp_range"` // multiple of Radius
}

// SpawnerTuning controls collectible population and placement
type SpawnerTuning struct {
	IntervalMin     time.Duration `toml:"interval_min" yaml:"interval_min"`
	IntervalMax     time.Duration `toml:"interval_max" yaml:"interval_max"`
	Cap             int           `toml:"cap" yaml:"cap"`
	Margin          float64       `toml:"margin" yaml:"margin"`
	MinSeparation   float64       `toml:"min_separation" yaml:"min_separation"`
	MaxAttempts     int           `toml:"max_attempts" yaml:"max_attempts"`
	SizeMin         float64       `toml:"size_min" yaml:"size_min"`
	SizeMax         float64       `toml:"size_max" yaml:"size_max"`
	SpawnAnimation  time.Duration `toml:"spawn_animation" yaml:"spawn_animation"`
	SeedCount       int           `toml:"seed_count" yaml:"seed_count"`
	SeedStagger     time.Duration `toml:"seed_stagger" yaml:"seed_stagger"`
	PaletteVariants int           `toml:"palette_variants" yaml:"palette_variants"`
}

// ScoreTuning defines points = floor(size/Divisor) + Base
type ScoreTuning struct {
	Divisor float64 `toml:"divisor" yaml:"divisor"`
	Base    int     `toml:"base" yaml:"base"`
}

// ParticleTuning controls the consumption burst
type ParticleTuning struct {
	Count    int     `toml:"count" yaml:"count"`
	SpeedMin float64 `toml:"speed_min" yaml:"speed_min"`
	SpeedMax float64 `toml:"speed_max" yaml:"speed_max"`
	Life     int     `toml:"life" yaml:"life"`
	Decay    float64 `toml:"decay" yaml:"decay"`
	HueMin   float64 `toml:"hue_min" yaml:"hue_min"`
	HueMax   float64 `toml:"hue_max" yaml:"hue_max"`
}

// MilestoneTuning controls the celebration overlay; Threshold 0 disables it
type MilestoneTuning struct {
	Threshold     int           `toml:"threshold" yaml:"threshold"`
	CheckInterval time.Duration `toml:"check_interval" yaml:"check_interval"`
	ScaleStart    float64       `toml:"scale_start" yaml:"scale_start"`
	ScaleMax      float64       `toml:"scale_max" yaml:"scale_max"`
	ScaleStep     float64       `toml:"scale_step" yaml:"scale_step"`
	Duration      int           `toml:"duration" yaml:"duration"`   // ticks
	FadeTail      int           `toml:"fade_tail" yaml:"fade_tail"` // ticks
}

// BridgeTuning controls the externally observable snapshot cadence
type BridgeTuning struct {
	SyncInterval time.Duration `toml:"sync_interval" yaml:"sync_interval"`
}

// MotionTuning controls elapsed-time scaling of per-tick displacement
type MotionTuning struct {
	ScaleByElapsed bool          `toml:"scale_by_elapsed" yaml:"scale_by_elapsed"`
	ReferenceFrame time.Duration `toml:"reference_frame" yaml:"reference_frame"`
	MaxStep        float64       `toml:"max_step" yaml:"max_step"`
}

// Default returns the optimized variant
func Default() Tuning {
	return Tuning{
		Pursuer: PursuerTuning{
			StartX:           PursuerStartX,
			StartY:           PursuerStartY,
			Radius:           PursuerRadius,
			Speed:            PursuerSpeed,
			TurnRate:         PursuerTurnRate,
			WanderSpeed:      PursuerWanderSpeed,
			WanderTurnChance: PursuerWanderTurnChance,
			NudgeChance:      0,
			CollisionDivisor: CollisionDivisor,
			MouthInterval:    MouthInterval,
			ChompInterval:    ChompInterval,
			ChompRange:       ChompRange,
		},
		Spawner: SpawnerTuning{
			IntervalMin:     SpawnIntervalMin,
			IntervalMax:     SpawnIntervalMax,
			Cap:             SpawnCap,
			Margin:          SpawnMargin,
			MinSeparation:   SpawnMinSeparation,
			MaxAttempts:     SpawnMaxAttempts,
			SizeMin:         CollectibleSizeMin,
			SizeMax:         CollectibleSizeMax,
			SpawnAnimation:  SpawnAnimation,
			SeedCount:       SeedCount,
			SeedStagger:     SeedStagger,
			PaletteVariants: PaletteVariants,
		},
		Score: ScoreTuning{
			Divisor: ScoreDivisor,
			Base:    ScoreBase,
		},
		Particles: ParticleTuning{
			Count:    ParticleCount,
			SpeedMin: ParticleSpeedMin,
			SpeedMax: ParticleSpeedMax,
			Life:     ParticleLife,
			Decay:    ParticleDecay,
			HueMin:   ParticleHueMin,
			HueMax:   ParticleHueMax,
		},
		Milestone: MilestoneTuning{
			Threshold:     MilestoneThreshold,
			CheckInterval: MilestoneCheckInterval,
			ScaleStart:    MilestoneScaleStart,
			ScaleMax:      MilestoneScaleMax,
			ScaleStep:     MilestoneScaleStep,
			Duration:      MilestoneDuration,
			FadeTail:      MilestoneFadeTail,
		},
		Bridge: BridgeTuning{
			SyncInterval: BridgeSyncInterval,
		},
		Motion: MotionTuning{
			ScaleByElapsed: true,
			ReferenceFrame: ReferenceFrame,
			MaxStep:        MaxMotionStep,
		},
	}
}

// Validate reports every out-of-range tunable at once
func (t Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidTuning}, args...)...))
		}
	}

	p := t.Pursuer
	check(p.Radius > 0, "pursuer.radius must be positive, got %v", p.Radius)
	check(p.Speed >= 0, "pursuer.speed must be non-negative, got %v", p.Speed)
	check(p.TurnRate > 0 && p.TurnRate <= 1, "pursuer.turn_rate must be in (0,1], got %v", p.TurnRate)
	check(p.WanderSpeed >= 0, "pursuer.wander_speed must be non-negative, got %v", p.WanderSpeed)
	check(p.WanderTurnChance >= 0 && p.WanderTurnChance <= 1, "pursuer.wander_turn_chance must be in [0,1], got %v", p.WanderTurnChance)
	check(p.NudgeChance >= 0 && p.NudgeChance <= 1, "pursuer.nudge_chance must be in [0,1], got %v", p.NudgeChance)
	check(p.CollisionDivisor > 0, "pursuer.collision_divisor must be positive, got %v", p.CollisionDivisor)
	check(p.MouthInterval > 0 && p.ChompInterval > 0, "pursuer mouth intervals must be positive")

	s := t.Spawner
	check(s.IntervalMin > 0 && s.IntervalMax >= s.IntervalMin, "spawner interval range invalid: [%v, %v]", s.IntervalMin, s.IntervalMax)
	check(s.Cap >= 0, "spawner.cap must be non-negative, got %d", s.Cap)
	check(s.Margin >= 0, "spawner.margin must be non-negative, got %v", s.Margin)
	check(s.MaxAttempts >= 1, "spawner.max_attempts must be at least 1, got %d", s.MaxAttempts)
	check(s.SizeMin > 0 && s.SizeMax >= s.SizeMin, "spawner size range invalid: [%v, %v]", s.SizeMin, s.SizeMax)
	check(s.SeedCount >= 0, "spawner.seed_count must be non-negative, got %d", s.SeedCount)
	check(s.PaletteVariants >= 1, "spawner.palette_variants must be at least 1, got %d", s.PaletteVariants)

	check(t.Score.Divisor > 0, "score.divisor must be positive, got %v", t.Score.Divisor)
	check(t.Score.Base >= 0, "score.base must be non-negative, got %d", t.Score.Base)

	pt := t.Particles
	check(pt.Count >= 0, "particles.count must be non-negative, got %d", pt.Count)
	check(pt.Life >= 1, "particles.life must be at least 1, got %d", pt.Life)
	check(pt.Decay > 0 && pt.Decay <= 1, "particles.decay must be in (0,1], got %v", pt.Decay)
	check(pt.SpeedMin >= 0 && pt.SpeedMax >= pt.SpeedMin, "particle speed range invalid: [%v, %v]", pt.SpeedMin, pt.SpeedMax)

	m := t.Milestone
	check(m.Threshold >= 0, "milestone.threshold must be non-negative, got %d", m.Threshold)
	check(m.Duration >= 1, "milestone.duration must be at least 1, got %d", m.Duration)
	check(m.FadeTail >= 1 && m.FadeTail <= m.Duration, "milestone.fade_tail must be in [1, duration], got %d", m.FadeTail)
	check(m.ScaleStart >= 0 && m.ScaleMax >= m.ScaleStart, "milestone scale range invalid: [%v, %v]", m.ScaleStart, m.ScaleMax)

	check(t.Bridge.SyncInterval > 0, "bridge.sync_interval must be positive, got %v", t.Bridge.SyncInterval)
	check(t.Motion.ReferenceFrame > 0, "motion.reference_frame must be positive, got %v", t.Motion.ReferenceFrame)
	check(t.Motion.MaxStep > 0, "motion.max_step must be positive, got %v", t.Motion.MaxStep)

	return errors.Join(errs...)
}
