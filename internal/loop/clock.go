package loop

import "time"

// Clock converts successive frame timestamps into clamped step deltas.
type Clock struct {
	last time.Time
}

// NewClock creates a clock anchored at now.
func NewClock(now time.Time) *Clock {
	return &Clock{last: now}
}

// Tick returns the delta since the previous tick in seconds, clamped to
// [0, MaxDelta], and advances the clock.
func (c *Clock) Tick(now time.Time) float64 {
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		d = 0
	}
	if d > MaxDelta {
		d = MaxDelta
	}
	return d.Seconds()
}
