package signal

// Walk is the sequential halving random walk.
type Walk struct {
	src   *Source
	amp   int
	state int32
}

// NewWalk returns a walk over draws in [-amp, +amp] starting at zero.
func NewWalk(src *Source, amp int) *Walk {
	return &Walk{src: src, amp: amp}
}

// Next returns the current accumulator, then folds in one draw:
//
//	state = trunc((state + draw) / 2)
func (w *Walk) Next() int32 {
	v := w.state
	w.state = int32((int64(w.state) + int64(w.src.Noise(w.amp))) / 2)
	return v
}

// Fill writes successive Next values into dst.
func (w *Walk) Fill(dst []int32) {
	for i := range dst {
		dst[i] = w.Next()
	}
}

// State returns the accumulator.
func (w *Walk) State() int32 {
	return w.state
}

// FilteredWalk fills dst with the block form of the walk: len(dst) draws are
// run through y[n] = 0.5*draw[n] + 0.5*y[n-1], truncated, and delayed by one
// sample so dst[0] is 0.
func FilteredWalk(dst []int32, src *Source, amp int) {
	y := 0.0
	prev := int32(0)
	for i := range dst {
		y = 0.5*float64(src.Noise(amp)) + 0.5*y
		dst[i] = prev
		prev = int32(y)
	}
}
