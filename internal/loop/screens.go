package loop

import "github.com/tomz197/skyfall/internal/object"

// Frame drives one frame of the run state machine. Phase transitions react
// to the input vector; only PhasePlaying advances the simulation. Pause and
// Start must be edge-triggered by the front end (a held key toggles once).
func (s *State) Frame(dt float64, in object.Input) {
	switch s.Phase {
	case PhaseMenu:
		if in.Start {
			s.StartRun()
		}
	case PhasePlaying:
		if in.Pause {
			s.TogglePause()
			return
		}
		s.Step(dt, in)
		s.Collide()
	case PhasePaused:
		if in.Pause {
			s.TogglePause()
		}
	case PhaseGameOver:
		// Death explosion keeps animating behind the game-over screen.
		s.advanceParticles(dt)
		if in.Start {
			s.StartRun()
		}
		if in.Pause {
			s.ReturnToMenu()
		}
	}
}

// StartRun resets all entity stores, score, lives and timers, repositions the
// player at bottom-center and enters PhasePlaying.
func (s *State) StartRun() {
	s.Bullets = s.Bullets[:0]
	s.Asteroids = s.Asteroids[:0]
	s.Aliens = s.Aliens[:0]
	s.PowerUps = s.PowerUps[:0]
	s.Particles = s.Particles[:0]

	s.Score = 0
	s.Lives = InitialLives
	s.Level = 1
	s.elapsed = 0
	s.difficulty = 0
	s.difficultyTimer = 0
	s.spawnInterval = InitialSpawnInterval
	s.spawnTimer = 0
	s.secondaryTimer = 0
	s.slowTimer = 0

	s.Player = object.NewPlayer(s.Bounds)
	s.Phase = PhasePlaying
	s.cues.MusicStart()
}

// TogglePause flips between PhasePlaying and PhasePaused. While paused the
// step is a no-op; rendering continues.
func (s *State) TogglePause() {
	switch s.Phase {
	case PhasePlaying:
		s.Phase = PhasePaused
	case PhasePaused:
		s.Phase = PhasePlaying
	}
}

// ReturnToMenu leaves the game-over screen for the title screen.
func (s *State) ReturnToMenu() {
	if s.Phase == PhaseGameOver {
		s.Phase = PhaseMenu
	}
}

// endRun freezes the simulation, commits the best score and emits the final
// explosion at the player's position. Runs exactly once per run; callers gate
// on lives reaching zero.
func (s *State) endRun() {
	if s.Score > s.Best {
		s.Best = s.Score
	}
	pr := s.Player.Rect()
	s.explodeAt(pr.CenterX(), pr.CenterY())
	s.cues.MusicStop()
	s.Phase = PhaseGameOver
}

// applyPowerUp applies a pickup's effect to the run state.
func (s *State) applyPowerUp(typ object.PowerUpType) {
	switch typ {
	case object.PowerShield:
		if s.Lives < MaxLives {
			s.Lives++
		}
	case object.PowerSlow:
		// Re-picking up while active resets the timer, it does not stack.
		s.slowTimer = SlowDuration
	}
}
