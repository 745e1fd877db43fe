package loop

import (
	"testing"

	"github.com/tomz197/skyfall/internal/object"
)

func TestNewStateStartsOnMenu(t *testing.T) {
	s := NewState(quietRand(), &recCues{})
	if s.Phase != PhaseMenu {
		t.Fatalf("phase = %v, want PhaseMenu", s.Phase)
	}
	if s.Lives != InitialLives || s.Level != 1 {
		t.Errorf("lives=%d level=%d, want %d and 1", s.Lives, s.Level, InitialLives)
	}
}

func TestMenuStart(t *testing.T) {
	cues := &recCues{}
	s := NewState(quietRand(), cues)

	s.Frame(1.0/60, object.Input{})
	if s.Phase != PhaseMenu {
		t.Fatal("menu advanced without start")
	}

	s.Frame(1.0/60, object.Input{Start: true})
	if s.Phase != PhasePlaying {
		t.Fatalf("phase = %v, want PhasePlaying", s.Phase)
	}
	if cues.musicStart != 1 {
		t.Errorf("music start cues = %d, want 1", cues.musicStart)
	}
}

func TestPauseGatesTheStep(t *testing.T) {
	s := playingState(nil, nil)

	s.Frame(1.0/60, object.Input{Pause: true})
	if s.Phase != PhasePaused {
		t.Fatalf("phase = %v, want PhasePaused", s.Phase)
	}

	before := s.Elapsed()
	s.Frame(1.0/60, object.Input{})
	if s.Elapsed() != before {
		t.Error("simulation advanced while paused")
	}

	s.Frame(1.0/60, object.Input{Pause: true})
	if s.Phase != PhasePlaying {
		t.Fatalf("phase = %v, want PhasePlaying after unpause", s.Phase)
	}
	s.Frame(1.0/60, object.Input{})
	if s.Elapsed() == before {
		t.Error("simulation did not resume")
	}
}

func TestPauseFrameDoesNotStep(t *testing.T) {
	s := playingState(nil, nil)
	before := s.Elapsed()
	// The pause press itself must not advance the simulation.
	s.Frame(1.0/60, object.Input{Pause: true})
	if s.Elapsed() != before {
		t.Error("pause frame stepped the simulation")
	}
}

func TestGameOverRestart(t *testing.T) {
	s := playingState(nil, nil)
	s.Score = 42
	s.refreshDerived()
	s.Lives = 1
	s.loseLife()
	if s.Phase != PhaseGameOver {
		t.Fatalf("phase = %v, want PhaseGameOver", s.Phase)
	}

	s.Frame(1.0/60, object.Input{Start: true})
	if s.Phase != PhasePlaying {
		t.Fatalf("phase = %v, want PhasePlaying after restart", s.Phase)
	}
	if s.Score != 0 || s.Lives != InitialLives || s.Level != 1 {
		t.Errorf("run state not reset: score=%d lives=%d level=%d", s.Score, s.Lives, s.Level)
	}
	if s.Best != 42 {
		t.Errorf("best = %d, want 42 carried across runs", s.Best)
	}
	if len(s.Particles) != 0 {
		t.Errorf("stale particles after restart")
	}
	if s.Elapsed() != 0 {
		t.Errorf("elapsed not reset: %v", s.Elapsed())
	}
	if s.SpawnInterval() != InitialSpawnInterval {
		t.Errorf("spawn interval not reset: %v", s.SpawnInterval())
	}
}

func TestGameOverToMenu(t *testing.T) {
	s := playingState(nil, nil)
	s.Lives = 1
	s.loseLife()

	s.Frame(1.0/60, object.Input{Pause: true})
	if s.Phase != PhaseMenu {
		t.Fatalf("phase = %v, want PhaseMenu", s.Phase)
	}
}

func TestGameOverParticlesKeepAnimating(t *testing.T) {
	s := playingState(nil, nil)
	s.Lives = 1
	s.loseLife()
	if len(s.Particles) == 0 {
		t.Fatal("no death explosion")
	}

	// The burst animates and eventually burns out behind the screen.
	for i := 0; i < 120; i++ {
		s.Frame(1.0/60, object.Input{})
	}
	if len(s.Particles) != 0 {
		t.Errorf("%d particles never died", len(s.Particles))
	}
	if s.Phase != PhaseGameOver {
		t.Errorf("phase drifted to %v", s.Phase)
	}
}

func TestSnapshotCopies(t *testing.T) {
	s := playingState(nil, nil)
	s.Asteroids = append(s.Asteroids, &object.Asteroid{X: 100, Y: 100, Size: 30, HP: 1})

	snap := s.Snapshot()
	if len(snap.Asteroids) != 1 {
		t.Fatalf("snapshot asteroids = %d", len(snap.Asteroids))
	}

	// Mutating the live state never changes an already-taken snapshot.
	s.Asteroids[0].X = 999
	s.Player.X = 5
	if snap.Asteroids[0].X != 100 {
		t.Errorf("snapshot asteroid tracks live state")
	}
	if snap.Player.X == 5 {
		t.Errorf("snapshot player tracks live state")
	}
}
