package loop

import "time"

// Logical play area - game objects use these dimensions. Front ends scale
// this space to the terminal or canvas they render on.
const (
	BoundsWidth  = 480.0
	BoundsHeight = 640.0
)

// Scoring
const (
	ScorePerAsteroid = 1
	ScorePerAlien    = 5
	ScorePerLevel    = 25 // Display level is score/ScorePerLevel + 1
)

// Lives
const (
	InitialLives = 3
	MaxLives     = 6
)

// Spawning. The primary spawner runs off the shrinking spawn interval; the
// secondary spawner is a fixed-rate policy that runs concurrently. Their
// rates are additive.
const (
	InitialSpawnInterval = 900.0 // ms
	SpawnIntervalStep    = 60.0  // ms shaved off per difficulty bump
	MinSpawnInterval     = 320.0 // ms floor
	DifficultyPeriod     = 30.0  // Seconds of play per difficulty bump

	PowerUpChance  = 0.12 // Chance of a bonus power-up per primary spawn
	AlienChance    = 0.01 // Per-frame alien chance once eligible
	AlienScoreGate = 50   // Minimum score before aliens appear

	SecondarySpawnInterval  = 700.0 // ms
	SecondaryAsteroidChance = 0.90  // Else a power-up
	SecondaryAlienChance    = 0.08
)

// Slow effect
const (
	SlowDuration = 5.0  // Seconds
	SlowFactor   = 0.45 // Fall-speed multiplier while active
)

// Effects
const (
	ExplosionParticles = 14
)

// MaxDelta bounds the per-step delta time so a stalled frame (tab
// backgrounding, suspended terminal) cannot tunnel entities through bounds.
const MaxDelta = 50 * time.Millisecond
