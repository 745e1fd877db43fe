// Package physics provides the collision and clamping primitives used by the
// simulation core.
package physics

// Rect is an axis-aligned rectangle. X,Y is the top-left corner; Y grows
// downward.
type Rect struct {
	X, Y float64
	W, H float64
}

// Overlaps reports whether r and o overlap. Boundary touches do not count as
// overlap: all comparisons are strict.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

// CenterY returns the vertical center of the rectangle.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
