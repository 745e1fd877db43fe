package loop

import "github.com/tomz197/skyfall/internal/object"

// HUD is the display state consumed by HUD sinks after each step.
type HUD struct {
	Score int
	Lives int
	Level int
	Best  int
}

// Snapshot is the read-only view of a frame handed to render adapters. All
// entities are value copies; renderers decide sprite-vs-fallback themselves,
// the core only reports entity kind and state.
type Snapshot struct {
	Phase  Phase
	Bounds object.Bounds

	Player    object.Player
	Bullets   []object.Bullet
	Asteroids []object.Asteroid
	Aliens    []object.Alien
	PowerUps  []object.PowerUp
	Particles []object.Particle

	HUD        HUD
	SlowActive bool
}

// Snapshot copies the current frame state for rendering.
func (s *State) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:      s.Phase,
		Bounds:     s.Bounds,
		Player:     *s.Player,
		HUD:        HUD{Score: s.Score, Lives: s.Lives, Level: s.Level, Best: s.Best},
		SlowActive: s.SlowActive(),
	}

	snap.Bullets = make([]object.Bullet, len(s.Bullets))
	for i, b := range s.Bullets {
		snap.Bullets[i] = *b
	}
	snap.Asteroids = make([]object.Asteroid, len(s.Asteroids))
	for i, a := range s.Asteroids {
		snap.Asteroids[i] = *a
	}
	snap.Aliens = make([]object.Alien, len(s.Aliens))
	for i, a := range s.Aliens {
		snap.Aliens[i] = *a
	}
	snap.PowerUps = make([]object.PowerUp, len(s.PowerUps))
	for i, p := range s.PowerUps {
		snap.PowerUps[i] = *p
	}
	snap.Particles = make([]object.Particle, len(s.Particles))
	for i, p := range s.Particles {
		snap.Particles[i] = *p
	}

	return snap
}
