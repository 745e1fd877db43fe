package object

import (
	"math"

	"github.com/tomz197/skyfall/internal/physics"
)

// Alien tuning.
const (
	AlienWidth  = 48.0
	AlienHeight = 36.0
	AlienHP     = 2

	alienBaseSpeed   = 70.0
	alienSpeedSpread = 60.0

	alienZigFrequency = 4.0  // Oscillation frequency multiplier on age
	alienZigAmplitude = 80.0 // Lateral speed amplitude (units/sec)

	alienBottomMargin = 80.0 // Removal threshold below the bottom edge
)

// AlienBehavior selects the alien's movement mode.
type AlienBehavior int

const (
	AlienZig      AlienBehavior = iota // Sinusoidal lateral drift
	AlienStraight                      // Vertical only
)

// Alien is a tougher falling enemy. Always takes exactly two bullet hits.
type Alien struct {
	X, Y     float64 // Top-left corner
	Speed    float64 // Fall speed (units/sec)
	HP       int
	Behavior AlienBehavior
	T        float64 // Age in seconds, drives the zig oscillation
}

// NewAlien spawns an alien just above the top edge at a random x with a
// random behavior.
func NewAlien(rng Rand, b Bounds) *Alien {
	behavior := AlienZig
	if rng.Float64() < 0.5 {
		behavior = AlienStraight
	}
	return &Alien{
		X:        rng.Float64() * (b.Width - AlienWidth),
		Y:        -AlienHeight,
		Speed:    alienBaseSpeed + rng.Float64()*alienSpeedSpread,
		HP:       AlienHP,
		Behavior: behavior,
	}
}

// Advance moves the alien. slowFactor scales the fall speed while the slow
// effect is active; the zig drift is not slowed.
func (a *Alien) Advance(dt, slowFactor float64) {
	a.T += dt
	a.Y += a.Speed * dt * slowFactor
	if a.Behavior == AlienZig {
		a.X += math.Sin(a.T*alienZigFrequency) * alienZigAmplitude * dt
	}
}

// OffScreen reports whether the alien has fallen past the bottom bound.
func (a *Alien) OffScreen(b Bounds) bool {
	return a.Y > b.Height+alienBottomMargin
}

// Rect returns the alien's collision rectangle.
func (a *Alien) Rect() physics.Rect {
	return physics.Rect{X: a.X, Y: a.Y, W: AlienWidth, H: AlienHeight}
}
