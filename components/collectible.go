package components

import "time"

// Collectible is a spawned target consumed on contact with the pursuer
type Collectible struct {
	ID      uint64
	X, Y    float64
	Size    float64 // diameter, drives render scale and score value
	Variant int     // palette index

	// Spawning is true during the entry animation that starts at SpawnedAt
	Spawning  bool
	SpawnedAt time.Duration
}

// Radius is half of Size
func (c *Collectible) Radius() float64 {
	return c.Size / 2
}
