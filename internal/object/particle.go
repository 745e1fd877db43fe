package object

import "math"

// Particle tuning.
const (
	particleGravity = 350.0 // Downward acceleration in units/sec²

	explosionMinSpeed = 60.0
	explosionMaxSpeed = 220.0
	explosionMinLife  = 0.35
	explosionMaxLife  = 0.9
)

// explosionColors is the palette explosion particles are drawn with. Front
// ends that cannot render color ignore it.
var explosionColors = []string{"#ffb347", "#ff6961", "#fdfd96", "#f8f8f8"}

// Particle is a purely cosmetic effect fragment. Gravity-accelerated, removed
// when its age reaches its life.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Age    float64 // Seconds alive
	Life   float64 // Seconds until removal
	Size   float64
	Color  string
}

// Advance integrates position and gravity and ages the particle.
func (p *Particle) Advance(dt float64) {
	p.VY += particleGravity * dt
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.Age += dt
}

// Dead reports whether the particle's life has run out.
func (p *Particle) Dead() bool {
	return p.Age >= p.Life
}

// Explosion creates a circular particle burst centered at (x, y).
func Explosion(rng Rand, x, y float64, count int) []*Particle {
	burst := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := explosionMinSpeed + rng.Float64()*(explosionMaxSpeed-explosionMinSpeed)
		burst = append(burst, &Particle{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Life:  explosionMinLife + rng.Float64()*(explosionMaxLife-explosionMinLife),
			Size:  1 + rng.Float64()*3,
			Color: explosionColors[i%len(explosionColors)],
		})
	}
	return burst
}
