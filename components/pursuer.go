package components

import "math"

// PursuerMode is the behavior state of the agent
type PursuerMode uint8

const (
	ModeWandering PursuerMode = iota
	ModeSeeking
)

func (m PursuerMode) String() string {
	switch m {
	case ModeSeeking:
		return "seeking"
	case ModeWandering:
		return "wandering"
	default:
		return "unknown"
	}
}

// Pursuer is the autonomous agent chasing collectibles
type Pursuer struct {
	X, Y      float64
	Heading   float64 // radians, kept in (-pi, pi]
	Speed     float64
	Radius    float64
	MouthOpen bool
	Mode      PursuerMode

	// AtDefault is set while the agent still sits at its configured start
	// placement; the first resize re-centres it and clears the flag
	AtDefault bool
}

// DistanceTo returns the Euclidean distance to a point
func (p *Pursuer) DistanceTo(x, y float64) float64 {
	return math.Hypot(x-p.X, y-p.Y)
}

// Advance moves the agent along its heading by dist
func (p *Pursuer) Advance(dist float64) {
	p.X += math.Cos(p.Heading) * dist
	p.Y += math.Sin(p.Heading) * dist
}
