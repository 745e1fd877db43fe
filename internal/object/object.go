// Package object defines the game entities and their per-frame motion rules.
// Entities are plain mutable records owned by the simulation state; none of
// them outlive a single run.
package object

import "github.com/tomz197/skyfall/internal/input"

// Input is an alias for the input package's control vector.
type Input = input.Input

// Bounds is the logical play area. Origin is the top-left corner and Y grows
// downward; front ends scale this space to whatever surface they render on.
type Bounds struct {
	Width  float64
	Height float64
}

// Rand is the random source injected into spawn and effect constructors so
// probability-driven behavior can be tested deterministically.
type Rand interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}
