package quality

import "math"

// Stats summarizes the samples of one plane.
type Stats struct {
	Length   int
	Mean     float64
	Variance float64
	StdDev   float64
	RMS      float64
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
}

// Calculate computes the statistics of samples in a single pass.
func Calculate[T ~int32 | ~uint8 | ~float64](samples []T) Stats {
	var s StreamingStats
	updateStats(&s, samples)
	return s.Result()
}

// StreamingStats accumulates Stats across several blocks of samples with
// results identical to Calculate over their concatenation.
type StreamingStats struct {
	n      int
	mean   float64
	m2     float64
	sumSq  float64
	minVal float64
	minPos int
	maxVal float64
	maxPos int
}

// Update adds a block of plane samples.
func (s *StreamingStats) Update(samples []int32) {
	updateStats(s, samples)
}

// UpdateFloat adds a block of float samples.
func (s *StreamingStats) UpdateFloat(samples []float64) {
	updateStats(s, samples)
}

func updateStats[T ~int32 | ~uint8 | ~float64](s *StreamingStats, samples []T) {
	for _, v := range samples {
		x := float64(v)
		if s.n == 0 || x < s.minVal {
			s.minVal, s.minPos = x, s.n
		}
		if s.n == 0 || x > s.maxVal {
			s.maxVal, s.maxPos = x, s.n
		}

		s.n++
		delta := x - s.mean
		s.mean += delta / float64(s.n)
		s.m2 += delta * (x - s.mean)
		s.sumSq += x * x
	}
}

// Result returns the statistics of everything added so far. An empty
// accumulator yields a zero Stats.
func (s *StreamingStats) Result() Stats {
	if s.n == 0 {
		return Stats{}
	}
	nf := float64(s.n)
	variance := s.m2 / nf
	return Stats{
		Length:   s.n,
		Mean:     s.mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		RMS:      math.Sqrt(s.sumSq / nf),
		Min:      s.minVal,
		MinPos:   s.minPos,
		Max:      s.maxVal,
		MaxPos:   s.maxPos,
	}
}

// Reset clears the accumulator.
func (s *StreamingStats) Reset() {
	*s = StreamingStats{}
}
