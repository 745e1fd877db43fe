package loop

import "github.com/tomz197/skyfall/internal/object"

// Step advances the simulation by dt seconds using the frame's input vector.
// It mutates the player, timers and entity stores; collision resolution runs
// afterwards in Collide. Callers outside PhasePlaying must not invoke it.
func (s *State) Step(dt float64, in object.Input) {
	// The clock already clamps, but a bad dt must never destabilize the
	// simulation.
	if dt < 0 {
		dt = 0
	}
	if max := MaxDelta.Seconds(); dt > max {
		dt = max
	}

	s.elapsed += dt

	// Difficulty: shrink the primary spawn interval every DifficultyPeriod.
	s.difficultyTimer += dt
	for s.difficultyTimer >= DifficultyPeriod {
		s.difficultyTimer -= DifficultyPeriod
		s.difficulty++
		s.spawnInterval -= SpawnIntervalStep
		if s.spawnInterval < MinSpawnInterval {
			s.spawnInterval = MinSpawnInterval
		}
	}

	// Player movement and shooting.
	s.Player.Steer(in, dt, s.Bounds)
	s.Player.TickCooldown(dt)
	if in.Shoot && s.Player.CanShoot() {
		s.Bullets = append(s.Bullets, object.NewBullet(s.Player))
		s.Player.Cooldown = object.ShootCooldown
		s.cues.Shoot()
	}

	// Both spawn policies run every step; their rates are additive.
	s.runPrimarySpawner(dt)
	s.runSecondarySpawner(dt)

	slow := 1.0
	if s.SlowActive() {
		slow = SlowFactor
	}

	// Advance entities, dropping the ones that cross their removal bound.
	// Off-screen removal never scores.
	keptB := s.Bullets[:0]
	for _, b := range s.Bullets {
		b.Advance(dt)
		if !b.OffScreen() {
			keptB = append(keptB, b)
		}
	}
	s.Bullets = keptB

	keptA := s.Asteroids[:0]
	for _, a := range s.Asteroids {
		a.Advance(dt, slow)
		if !a.OffScreen(s.Bounds) {
			keptA = append(keptA, a)
		}
	}
	s.Asteroids = keptA

	keptAl := s.Aliens[:0]
	for _, a := range s.Aliens {
		a.Advance(dt, slow)
		if !a.OffScreen(s.Bounds) {
			keptAl = append(keptAl, a)
		}
	}
	s.Aliens = keptAl

	keptP := s.PowerUps[:0]
	for _, p := range s.PowerUps {
		p.Advance(dt)
		if !p.OffScreen(s.Bounds) {
			keptP = append(keptP, p)
		}
	}
	s.PowerUps = keptP

	s.advanceParticles(dt)

	// Slow effect countdown.
	if s.slowTimer > 0 {
		s.slowTimer -= dt
		if s.slowTimer < 0 {
			s.slowTimer = 0
		}
	}

	s.refreshDerived()
}

// advanceParticles integrates particle motion and drops dead ones. Runs in
// every phase that still shows effects (playing and game over).
func (s *State) advanceParticles(dt float64) {
	kept := s.Particles[:0]
	for _, p := range s.Particles {
		p.Advance(dt)
		if !p.Dead() {
			kept = append(kept, p)
		}
	}
	s.Particles = kept
}
