package object

import "github.com/tomz197/skyfall/internal/physics"

// Player tuning.
const (
	PlayerWidth  = 54.0
	PlayerHeight = 42.0
	PlayerSpeed  = 320.0 // Horizontal speed in units/sec
	BoostFactor  = 1.6   // Speed multiplier while boost is held
	PlayerMargin = 8.0   // Minimum distance from the side walls

	ShootCooldown = 250.0 // Milliseconds between shots

	playerBottomGap = 18.0 // Gap between ship and bottom edge at spawn
)

// Player is the player-controlled ship. One instance exists per run, reset at
// run start.
type Player struct {
	X, Y     float64 // Top-left corner
	W, H     float64
	VX       float64 // Current horizontal velocity
	Speed    float64 // Base speed before boost
	Cooldown float64 // Milliseconds until the next shot is allowed
	Boosting bool
}

// NewPlayer creates a ship at the bottom-center of the play area.
func NewPlayer(b Bounds) *Player {
	return &Player{
		X:     (b.Width - PlayerWidth) / 2,
		Y:     b.Height - PlayerHeight - playerBottomGap,
		W:     PlayerWidth,
		H:     PlayerHeight,
		Speed: PlayerSpeed,
	}
}

// Steer applies horizontal movement from the input vector. Right is checked
// after left, so right wins when both are held. Position is clamped to the
// side margins.
func (p *Player) Steer(in Input, dt float64, b Bounds) {
	p.Boosting = in.Boost

	speed := p.Speed
	if in.Boost {
		speed *= BoostFactor
	}

	p.VX = 0
	if in.Left {
		p.VX = -speed
	}
	if in.Right {
		p.VX = speed
	}

	p.X += p.VX * dt
	p.X = physics.Clamp(p.X, PlayerMargin, b.Width-PlayerMargin-p.W)
}

// TickCooldown counts the shoot cooldown down by dt seconds.
func (p *Player) TickCooldown(dt float64) {
	p.Cooldown -= dt * 1000
	if p.Cooldown < 0 {
		p.Cooldown = 0
	}
}

// CanShoot reports whether the cooldown has elapsed.
func (p *Player) CanShoot() bool {
	return p.Cooldown <= 0
}

// Rect returns the ship's collision rectangle.
func (p *Player) Rect() physics.Rect {
	return physics.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}
