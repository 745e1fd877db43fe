package object

// seqRand feeds a fixed sequence of values, cycling when exhausted.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

var testBounds = Bounds{Width: 480, Height: 640}
