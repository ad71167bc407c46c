package parameter

// System priorities, lower runs first within a tick
const (
	PrioritySpawner   = 10
	PriorityPursuer   = 20
	PriorityParticles = 30
	PriorityBridge    = 40
	PriorityMilestone = 50
)
