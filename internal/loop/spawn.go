package loop

import "github.com/tomz197/skyfall/internal/object"

// runPrimarySpawner is the spawn-interval policy: accumulate frame time, and
// when it exceeds the current interval spawn an asteroid, with a small chance
// of a bonus power-up. Independently each frame, once the score gate is
// reached, there is a per-frame alien chance.
func (s *State) runPrimarySpawner(dt float64) {
	s.spawnTimer += dt * 1000
	if s.spawnTimer > s.spawnInterval {
		s.spawnTimer = 0
		s.Asteroids = append(s.Asteroids, object.NewAsteroid(s.rng, s.Bounds, s.Score))
		if s.rng.Float64() < PowerUpChance {
			s.PowerUps = append(s.PowerUps, object.NewPowerUp(s.rng, s.Bounds))
		}
	}

	if s.Score >= AlienScoreGate && s.rng.Float64() < AlienChance {
		s.Aliens = append(s.Aliens, object.NewAlien(s.rng, s.Bounds))
	}
}

// runSecondarySpawner is the fixed-rate policy: every SecondarySpawnInterval
// it rolls asteroid-or-power-up, plus an alien roll once the score gate is
// reached. It is kept separate from the primary policy on purpose: the
// overall spawn density is the sum of both.
func (s *State) runSecondarySpawner(dt float64) {
	s.secondaryTimer += dt * 1000
	for s.secondaryTimer >= SecondarySpawnInterval {
		s.secondaryTimer -= SecondarySpawnInterval

		if s.rng.Float64() < SecondaryAsteroidChance {
			s.Asteroids = append(s.Asteroids, object.NewAsteroid(s.rng, s.Bounds, s.Score))
		} else {
			s.PowerUps = append(s.PowerUps, object.NewPowerUp(s.rng, s.Bounds))
		}

		if s.Score >= AlienScoreGate && s.rng.Float64() < SecondaryAlienChance {
			s.Aliens = append(s.Aliens, object.NewAlien(s.rng, s.Bounds))
		}
	}
}
