package components

// Arena is the bounded region all motion happens in
// Mutated only by resize notifications
type Arena struct {
	Width  float64
	Height float64
}

// Valid reports whether bounds are known; ticks are skipped until they are
func (a Arena) Valid() bool {
	return a.Width > 0 && a.Height > 0
}

// Clamp keeps a body of the given radius fully inside the arena
// When the arena is narrower than the body the centre line is used
func (a Arena) Clamp(x, y, radius float64) (float64, float64) {
	return clampAxis(x, radius, a.Width), clampAxis(y, radius, a.Height)
}

// Contains reports whether a point lies within the arena rectangle
func (a Arena) Contains(x, y float64) bool {
	return x >= 0 && y >= 0 && x <= a.Width && y <= a.Height
}

// Center returns the arena midpoint
func (a Arena) Center() (float64, float64) {
	return a.Width / 2, a.Height / 2
}

func clampAxis(v, radius, dim float64) float64 {
	lo, hi := radius, dim-radius
	if hi < lo {
		return dim / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
