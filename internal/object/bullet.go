package object

import "github.com/tomz197/skyfall/internal/physics"

// Bullet tuning.
const (
	BulletWidth  = 10.0
	BulletHeight = 16.0
	BulletSpeed  = 720.0 // Upward speed in units/sec

	bulletTopBound = -30.0 // Removal threshold above the top edge
)

// Bullet is a projectile fired by the player. It travels straight up and is
// destroyed on its first hit or when it leaves the top bound.
type Bullet struct {
	X, Y float64 // Top-left corner
}

// NewBullet creates a bullet centered on the ship's nose.
func NewBullet(p *Player) *Bullet {
	return &Bullet{
		X: p.X + p.W/2 - BulletWidth/2,
		Y: p.Y - BulletHeight,
	}
}

// Advance moves the bullet upward.
func (b *Bullet) Advance(dt float64) {
	b.Y -= BulletSpeed * dt
}

// OffScreen reports whether the bullet has left the top bound.
func (b *Bullet) OffScreen() bool {
	return b.Y < bulletTopBound
}

// Rect returns the bullet's collision rectangle.
func (b *Bullet) Rect() physics.Rect {
	return physics.Rect{X: b.X, Y: b.Y, W: BulletWidth, H: BulletHeight}
}
