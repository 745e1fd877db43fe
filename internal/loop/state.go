package loop

import (
	"math/rand"
	"time"

	"github.com/tomz197/skyfall/internal/object"
)

// Phase represents the run state machine.
type Phase int

const (
	PhaseMenu     Phase = iota // Title screen
	PhasePlaying               // Active gameplay
	PhasePaused                // Step gated, render continues
	PhaseGameOver              // Run ended, show restart prompt
)

// State is the owned run-state aggregate: the player, the five entity
// stores, score/lives/timers and the phase. Everything a step call mutates
// lives here, so the simulation runs deterministically without a live render
// surface.
type State struct {
	Phase  Phase
	Bounds object.Bounds

	Player    *object.Player
	Bullets   []*object.Bullet
	Asteroids []*object.Asteroid
	Aliens    []*object.Alien
	PowerUps  []*object.PowerUp
	Particles []*object.Particle

	Score int
	Lives int
	Level int
	Best  int

	elapsed         float64 // In-run seconds
	difficulty      int     // Internal counter, independent of Level
	difficultyTimer float64 // Seconds since the last difficulty bump
	spawnInterval   float64 // Current primary spawn interval (ms)
	spawnTimer      float64 // Primary spawn accumulator (ms)
	secondaryTimer  float64 // Secondary spawn accumulator (ms)
	slowTimer       float64 // Remaining slow effect (seconds)

	rng  object.Rand
	cues Cues
}

// NewState creates a fresh state in the menu phase. A nil rng gets a
// time-seeded source; a nil cues gets the no-op sink.
func NewState(rng object.Rand, cues Cues) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cues == nil {
		cues = NopCues{}
	}
	b := object.Bounds{Width: BoundsWidth, Height: BoundsHeight}
	return &State{
		Phase:         PhaseMenu,
		Bounds:        b,
		Player:        object.NewPlayer(b),
		Lives:         InitialLives,
		Level:         1,
		spawnInterval: InitialSpawnInterval,
		rng:           rng,
		cues:          cues,
	}
}

// SlowActive reports whether the slow effect is currently running.
func (s *State) SlowActive() bool {
	return s.slowTimer > 0
}

// SlowRemaining returns the remaining slow effect duration in seconds.
func (s *State) SlowRemaining() float64 {
	return s.slowTimer
}

// SpawnInterval returns the current primary spawn interval in milliseconds.
func (s *State) SpawnInterval() float64 {
	return s.spawnInterval
}

// Elapsed returns the in-run time in seconds.
func (s *State) Elapsed() float64 {
	return s.elapsed
}

// refreshDerived recomputes best score and the display level after all
// mutations of a step or collision pass.
func (s *State) refreshDerived() {
	if s.Score > s.Best {
		s.Best = s.Score
	}
	s.Level = s.Score/ScorePerLevel + 1
}

// explodeAt appends an explosion burst at (x, y) and triggers the cue.
func (s *State) explodeAt(x, y float64) {
	s.Particles = append(s.Particles, object.Explosion(s.rng, x, y, ExplosionParticles)...)
	s.cues.Explode()
}
