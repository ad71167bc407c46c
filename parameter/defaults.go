package parameter

import "time"

// Pursuer
const (
	// PursuerStartX, PursuerStartY is the default placement before the first resize
	PursuerStartX = 100.0
	PursuerStartY = 100.0

	PursuerRadius = 20.0
	PursuerSpeed  = 3.0

	// PursuerTurnRate is the fraction of the heading error corrected per tick
	PursuerTurnRate = 0.15

	// PursuerWanderSpeed is the speed multiplier while no target exists
	PursuerWanderSpeed = 0.5

	// PursuerWanderTurnChance is the per-tick probability of a random new heading
	PursuerWanderTurnChance = 0.02

	// CollisionDivisor: contact when distance < (pursuerRadius + targetRadius) / CollisionDivisor
	CollisionDivisor = 2.0

	MouthInterval = 150 * time.Millisecond
	ChompInterval = 120 * time.Millisecond

	// ChompRange is the target distance, in pursuer radii, that switches to ChompInterval
	ChompRange = 3.0
)

// Spawner
const (
	SpawnIntervalMin = 1500 * time.Millisecond
	SpawnIntervalMax = 3000 * time.Millisecond

	// SpawnCap is the maximum number of live collectibles
	SpawnCap = 10

	// SpawnMargin is the inset from every arena edge used for placement
	SpawnMargin = 40.0

	// SpawnMinSeparation is the preferred minimum distance from the pursuer
	SpawnMinSeparation = 100.0

	// SpawnMaxAttempts bounds reject sampling; the last candidate is accepted
	SpawnMaxAttempts = 20

	CollectibleSizeMin = 30.0
	CollectibleSizeMax = 45.0

	// SpawnAnimation is how long a new collectible stays in its entry animation
	SpawnAnimation = 400 * time.Millisecond

	// SeedCount collectibles are scheduled SeedStagger apart after the first valid tick
	SeedCount   = 4
	SeedStagger = 800 * time.Millisecond

	PaletteVariants = 8
)

// Score
const (
	ScoreDivisor = 3.0
	ScoreBase    = 5
)

// Particles
const (
	ParticleCount    = 8
	ParticleSpeedMin = 1.0
	ParticleSpeedMax = 4.0
	ParticleLife     = 30
	ParticleDecay    = 0.98

	// Golden hue band in degrees
	ParticleHueMin = 30.0
	ParticleHueMax = 90.0
)

// Milestone
const (
	MilestoneThreshold     = 1000
	MilestoneCheckInterval = 2000 * time.Millisecond
	MilestoneScaleStart    = 0.2
	MilestoneScaleMax      = 1.3
	MilestoneScaleStep     = 0.02
	MilestoneDuration      = 240
	MilestoneFadeTail      = 80
)

// Bridge and motion
const (
	BridgeSyncInterval = 1000 * time.Millisecond

	// ReferenceFrame is the tick length at which motion scale equals 1
	ReferenceFrame = 16 * time.Millisecond

	// MaxMotionStep caps the motion scale after long stalls
	MaxMotionStep = 3.0
)
