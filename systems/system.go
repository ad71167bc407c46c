// Package systems holds the per-tick stages of the attract loop
package systems

import (
	"github.com/goldenmunch/attract/engine"
	"github.com/goldenmunch/attract/scoring"
)

// NewPipeline builds the canonical update order:
// spawner, pursuer, particles, bridge sync, milestone
func NewPipeline(rule scoring.Rule, bridge *engine.Bridge) *engine.Pipeline {
	p := &engine.Pipeline{}
	p.Add(NewSpawnerSystem())
	p.Add(NewPursuerSystem(rule))
	p.Add(NewParticleSystem())
	p.Add(NewBridgeSystem(bridge))
	p.Add(NewMilestoneSystem(bridge))
	return p
}
