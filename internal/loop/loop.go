// Package loop is the simulation core: the run state machine, the per-frame
// step, spawning, collision resolution, and the terminal front-end loop that
// drives them.
package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/tomz197/skyfall/internal/draw"
	"github.com/tomz197/skyfall/internal/input"
	"github.com/tomz197/skyfall/internal/object"
)

const targetFPS = 60
const targetFrameTime = time.Second / targetFPS

// Options configures a terminal game session. Zero values are usable: size
// from stdout, no persistence, no audio.
type Options struct {
	TermSize draw.TermSizeFunc // Terminal size source; nil uses stdout
	Store    BestStore         // Best-score persistence; nil disables
	Cues     Cues              // Audio sink; nil discards cues
	Rand     object.Rand       // Random source; nil gets a time-seeded one
}

// Run starts the Input → Update → Draw cycle on a terminal. Blocks until the
// player quits or the input stream closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	termSize := opts.TermSize
	if termSize == nil {
		termSize = draw.TerminalSizeRaw
	}

	state := NewState(opts.Rand, opts.Cues)
	lastSavedBest := loadBest(state, opts.Store)

	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termWidth, termHeight, _ := termSize()
	canvas := draw.NewFittedCanvas(termWidth, termHeight, BoundsWidth, BoundsHeight)

	clock := NewClock(time.Now())
	var prev object.Input

	for {
		frameStart := time.Now()
		dt := clock.Tick(frameStart)

		in := input.ReadInput(stream)
		if in.Quit {
			break
		}

		// Pause and start act on key press, not key hold.
		edged := in
		edged.Pause = in.Pause && !prev.Pause
		edged.Start = in.Start && !prev.Start
		prev = in

		phaseBefore := state.Phase
		state.Frame(dt, edged)
		if state.Phase != phaseBefore {
			input.ResetKeyInput(stream)
			prev = object.Input{}
		}

		// Persist the best score whenever a run ends with it beaten.
		if state.Phase == PhaseGameOver && phaseBefore == PhasePlaying {
			lastSavedBest = saveBest(state, opts.Store, lastSavedBest)
		}

		if tw, th, err := termSize(); err == nil {
			canvas.Resize(tw, th)
		}
		drawFrame(state.Snapshot(), w, canvas)

		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	// A quit mid-run still commits a beaten best.
	saveBest(state, opts.Store, lastSavedBest)

	draw.ClearScreen(w)
	return nil
}

// loadBest seeds the state's best score from the store. Persistence failures
// degrade silently.
func loadBest(state *State, store BestStore) int {
	if store == nil {
		return 0
	}
	best, err := store.Best()
	if err != nil {
		return 0
	}
	state.Best = best
	return best
}

// saveBest writes the best score if it was beaten since the last save and
// returns the new saved value.
func saveBest(state *State, store BestStore, lastSaved int) int {
	if store == nil || state.Best <= lastSaved {
		return lastSaved
	}
	if err := store.SaveBest(state.Best); err != nil {
		return lastSaved
	}
	return state.Best
}
