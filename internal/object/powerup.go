package object

import "github.com/tomz197/skyfall/internal/physics"

// PowerUp tuning.
const (
	PowerUpSize      = 22.0
	PowerUpFallSpeed = 110.0

	powerUpBottomMargin = 40.0 // Removal threshold below the bottom edge
)

// PowerUpType selects the pickup effect.
type PowerUpType int

const (
	PowerShield PowerUpType = iota // +1 life, capped
	PowerSlow                      // Timed global fall-speed multiplier
)

// PowerUp is a falling pickup. Constant fall speed, unaffected by the slow
// effect.
type PowerUp struct {
	X, Y float64 // Top-left corner
	Type PowerUpType
}

// NewPowerUp spawns a power-up of random type just above the top edge.
func NewPowerUp(rng Rand, b Bounds) *PowerUp {
	typ := PowerShield
	if rng.Float64() < 0.5 {
		typ = PowerSlow
	}
	return &PowerUp{
		X:    rng.Float64() * (b.Width - PowerUpSize),
		Y:    -PowerUpSize,
		Type: typ,
	}
}

// Advance moves the power-up downward.
func (p *PowerUp) Advance(dt float64) {
	p.Y += PowerUpFallSpeed * dt
}

// OffScreen reports whether the power-up has fallen past the bottom bound.
func (p *PowerUp) OffScreen(b Bounds) bool {
	return p.Y > b.Height+powerUpBottomMargin
}

// Rect returns the power-up's collision rectangle.
func (p *PowerUp) Rect() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: PowerUpSize, H: PowerUpSize}
}
