package object

import (
	"math"

	"github.com/tomz197/skyfall/internal/physics"
)

// Asteroid tuning.
const (
	AsteroidMinSize = 22.0
	AsteroidMaxSize = 84.0

	asteroidBaseSpeed   = 90.0  // Minimum fall speed
	asteroidSpeedSpread = 130.0 // Random fall speed range on top of base
	asteroidScoreSpeed  = 1.2   // Extra fall speed per score point
	asteroidScoreCap    = 180.0 // Cap on score-driven extra speed

	asteroidMaxSpin = 3.0 // Max rotation speed magnitude (radians/sec)

	asteroidHitPointSize = 28.0 // Size units per hit point
	asteroidBottomMargin = 80.0 // Removal threshold below the bottom edge
)

// Asteroid is a destructible falling rock. Square collision box of side Size.
type Asteroid struct {
	X, Y     float64 // Top-left corner
	Size     float64 // Side length
	Angle    float64 // Current rotation (radians, cosmetic)
	RotSpeed float64 // Rotation speed (radians/sec)
	Speed    float64 // Fall speed (units/sec)
	HP       int
}

// HitPoints returns the hit points for an asteroid of the given size:
// ceil(size/28), minimum 1.
func HitPoints(size float64) int {
	hp := int(math.Ceil(size / asteroidHitPointSize))
	if hp < 1 {
		hp = 1
	}
	return hp
}

// NewAsteroid spawns an asteroid just above the top edge at a random x. Fall
// speed is random, scaled up with the current score.
func NewAsteroid(rng Rand, b Bounds, score int) *Asteroid {
	size := AsteroidMinSize + rng.Float64()*(AsteroidMaxSize-AsteroidMinSize)
	speed := asteroidBaseSpeed + rng.Float64()*asteroidSpeedSpread +
		math.Min(float64(score)*asteroidScoreSpeed, asteroidScoreCap)

	return &Asteroid{
		X:        rng.Float64() * (b.Width - size),
		Y:        -size,
		Size:     size,
		Angle:    rng.Float64() * 2 * math.Pi,
		RotSpeed: (rng.Float64() - 0.5) * 2 * asteroidMaxSpin,
		Speed:    speed,
		HP:       HitPoints(size),
	}
}

// Advance moves and rotates the asteroid. slowFactor scales the fall speed
// while the slow effect is active.
func (a *Asteroid) Advance(dt, slowFactor float64) {
	a.Y += a.Speed * dt * slowFactor
	a.Angle += a.RotSpeed * dt
}

// OffScreen reports whether the asteroid has fallen past the bottom bound.
func (a *Asteroid) OffScreen(b Bounds) bool {
	return a.Y > b.Height+asteroidBottomMargin
}

// Rect returns the asteroid's collision rectangle.
func (a *Asteroid) Rect() physics.Rect {
	return physics.Rect{X: a.X, Y: a.Y, W: a.Size, H: a.Size}
}
