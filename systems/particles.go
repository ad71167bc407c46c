package systems

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/goldenmunch/attract/components"
	"github.com/goldenmunch/attract/engine"
	"github.com/goldenmunch/attract/parameter"
)

// ParticleSystem integrates and culls burst particles
type ParticleSystem struct{}

// NewParticleSystem creates the particle integrator
func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

// Name returns system's name
func (s *ParticleSystem) Name() string {
	return "particles"
}

// Priority returns the system's priority
func (s *ParticleSystem) Priority() int {
	return parameter.PriorityParticles
}

// Update steps every particle once and drops the dead ones in place
func (s *ParticleSystem) Update(st *engine.State) {
	decay := st.Tuning.Particles.Decay
	alive := st.Particles[:0]
	for i := range st.Particles {
		p := st.Particles[i]
		p.Step(decay)
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	st.Particles = alive
}

// Burst emits the consumption burst at (x, y)
func Burst(st *engine.State, x, y float64) {
	pt := st.Tuning.Particles
	for i := 0; i < pt.Count; i++ {
		angle := st.RandomAngle()
		speed := st.RandomRange(pt.SpeedMin, pt.SpeedMax)
		hue := st.RandomRange(pt.HueMin, pt.HueMax)

		r, g, b := colorful.Hsl(hue, 0.7, 0.6).Clamped().RGB255()
		st.Particles = append(st.Particles, components.Particle{
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    pt.Life,
			MaxLife: pt.Life,
			Color:   color.RGBA{R: r, G: g, B: b, A: 255},
		})
	}
}
