package components

import "image/color"

// Particle is a decorative impulse emitted on consumption
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   color.RGBA
}

// Alpha is the linear fade factor life/maxLife
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}

// Step integrates one tick: move, decay velocity, age
func (p *Particle) Step(decay float64) {
	p.X += p.VX
	p.Y += p.VY
	p.VX *= decay
	p.VY *= decay
	p.Life--
}

// Alive reports whether the particle still has life left
func (p *Particle) Alive() bool {
	return p.Life > 0
}
