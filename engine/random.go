package engine

import (
	"math"
	"math/rand"
	"time"
)

func (s *State) randomFloat() float64 {
	if s != nil && s.Rand != nil {
		return s.Rand.Float64()
	}
	return rand.Float64()
}

// RandomFloat returns a uniform value in [0, 1)
func (s *State) RandomFloat() float64 {
	return s.randomFloat()
}

// RandomRange returns a uniform value in [min, max)
func (s *State) RandomRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.randomFloat()*(max-min)
}

// RandomAngle returns a uniform heading in [0, 2pi)
func (s *State) RandomAngle() float64 {
	return s.randomFloat() * 2 * math.Pi
}

// RandomDuration returns a uniform duration in [min, max]
func (s *State) RandomDuration(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(s.randomFloat()*float64(max-min))
}

// RandomIndex returns a uniform index in [0, n)
func (s *State) RandomIndex(n int) int {
	if n <= 1 {
		return 0
	}
	i := int(s.randomFloat() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Chance returns true with probability p
func (s *State) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return s.randomFloat() < p
}
