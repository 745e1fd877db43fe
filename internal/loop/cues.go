package loop

// Cues is the audio trigger surface the core calls out on. Implementations
// must not block; a missing or failed audio backend never affects the
// simulation.
type Cues interface {
	Shoot()
	Explode()
	Pickup()
	MusicStart()
	MusicStop()
}

// NopCues discards all cues. Used by front ends without audio (SSH sessions)
// and by tests.
type NopCues struct{}

func (NopCues) Shoot()      {}
func (NopCues) Explode()    {}
func (NopCues) Pickup()     {}
func (NopCues) MusicStart() {}
func (NopCues) MusicStop()  {}

// BestStore is the persistence surface for the single durable value: the
// best score. Read at startup, written whenever beaten.
type BestStore interface {
	Best() (int, error)
	SaveBest(best int) error
}
