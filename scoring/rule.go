// Package scoring converts a consumed collectible into points
package scoring

import (
	"math"

	"github.com/goldenmunch/attract/parameter"
)

// Rule maps a collectible size to a non-negative point value
type Rule interface {
	Points(size float64) int
}

// Formula awards floor(size/Divisor) + Base
type Formula struct {
	Divisor float64
	Base    int
}

// FromTuning builds the formula configured for a profile
func FromTuning(t parameter.ScoreTuning) Formula {
	return Formula{Divisor: t.Divisor, Base: t.Base}
}

// Points implements Rule
func (f Formula) Points(size float64) int {
	pts := f.Base
	if f.Divisor > 0 && size > 0 {
		pts += int(math.Floor(size / f.Divisor))
	}
	if pts < 0 {
		return 0
	}
	return pts
}
