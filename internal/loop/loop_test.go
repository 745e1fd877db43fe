package loop

import "github.com/tomz197/skyfall/internal/object"

// seqRand feeds a fixed sequence of values, cycling when exhausted. A single
// high value suppresses every probability roll.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

// quietRand fails every probability roll, so nothing random ever spawns.
func quietRand() object.Rand {
	return &seqRand{vals: []float64{0.999}}
}

// recCues counts cue calls.
type recCues struct {
	shoot, explode, pickup int
	musicStart, musicStop  int
}

func (c *recCues) Shoot()      { c.shoot++ }
func (c *recCues) Explode()    { c.explode++ }
func (c *recCues) Pickup()     { c.pickup++ }
func (c *recCues) MusicStart() { c.musicStart++ }
func (c *recCues) MusicStop()  { c.musicStop++ }

// playingState returns a state in PhasePlaying with deterministic randomness
// and recording cues.
func playingState(rng object.Rand, cues Cues) *State {
	if rng == nil {
		rng = quietRand()
	}
	if cues == nil {
		cues = &recCues{}
	}
	s := NewState(rng, cues)
	s.StartRun()
	return s
}
