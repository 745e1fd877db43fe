// Package audio plays the game's sound cues with synthesized tones. The
// speaker is initialized once; when no audio device is available every cue
// silently becomes a no-op, the simulation never notices.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Manager synthesizes and mixes the game's audio cues. Implements the
// simulation core's cue interface.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool
}

// NewManager creates an uninitialized manager. All cues are no-ops until
// Init succeeds.
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Init sets up the speaker. An error leaves the manager in silent mode; the
// caller may log it but the game runs on regardless.
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Close stops all sounds.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// play adds a one-shot streamer to the mixer.
func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Shoot plays a short descending square blip.
func (m *Manager) Shoot() {
	d := 90 * time.Millisecond
	m.play(NewEnvelope(
		NewSweep(880, 440, d, WaveSquare, sampleRate),
		d, 2*time.Millisecond, 40*time.Millisecond, 0.25, sampleRate))
}

// Explode plays a noise burst.
func (m *Manager) Explode() {
	d := 320 * time.Millisecond
	m.play(NewEnvelope(
		NewOscillator(0, d, WaveNoise, sampleRate),
		d, 2*time.Millisecond, 250*time.Millisecond, 0.5, sampleRate))
}

// Pickup plays a rising sine chirp.
func (m *Manager) Pickup() {
	d := 180 * time.Millisecond
	m.play(NewEnvelope(
		NewSweep(520, 1040, d, WaveSine, sampleRate),
		d, 5*time.Millisecond, 60*time.Millisecond, 0.35, sampleRate))
}

// MusicStart begins the looped background arpeggio. Starting while already
// playing restarts it.
func (m *Manager) MusicStart() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized {
		return
	}

	speaker.Lock()
	if m.music != nil {
		m.music.Paused = true
	}
	ctrl := &beep.Ctrl{Streamer: newMusicLoop()}
	m.music = ctrl
	m.mixer.Add(ctrl)
	speaker.Unlock()
}

// MusicStop pauses the background music.
func (m *Manager) MusicStop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.initialized || m.music == nil {
		return
	}
	speaker.Lock()
	m.music.Paused = true
	speaker.Unlock()
}

// musicLoop cycles through a fixed arpeggio pattern forever.
type musicLoop struct {
	notes   []float64
	note    int
	current beep.Streamer
}

func newMusicLoop() *musicLoop {
	// A minor arpeggio, two octaves.
	return &musicLoop{
		notes: []float64{220, 261.63, 329.63, 440, 329.63, 261.63},
	}
}

func (l *musicLoop) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if l.current == nil {
			freq := l.notes[l.note%len(l.notes)]
			l.note++
			d := 240 * time.Millisecond
			l.current = NewEnvelope(
				NewOscillator(freq, d, WaveSine, sampleRate),
				d, 10*time.Millisecond, 120*time.Millisecond, 0.12, sampleRate)
		}
		cn, cok := l.current.Stream(samples[n:])
		n += cn
		if !cok {
			l.current = nil
		}
	}
	return n, true
}

func (l *musicLoop) Err() error { return nil }
