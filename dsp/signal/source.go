package signal

import (
	"math"
	"math/rand"
)

// Source is a seeded random source. It is not safe for concurrent use.
type Source struct {
	rng  *rand.Rand
	seed int64
}

// NewSource returns a Source seeded with seed.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed the source was created or last reseeded with.
func (s *Source) Seed() int64 {
	return s.seed
}

// Reseed restarts the sequence from seed.
func (s *Source) Reseed(seed int64) {
	s.rng.Seed(seed)
	s.seed = seed
}

// Int returns a value in [0, MaxInt32).
func (s *Source) Int() int32 {
	return s.rng.Int31n(math.MaxInt32)
}

// Noise returns a value in [-amp, +amp] derived from one Int draw.
// A zero amplitude still consumes a draw and returns 0.
func (s *Source) Noise(amp int) int32 {
	if amp < 0 {
		amp = -amp
	}
	mod := int64(amp)*2 + 1
	return int32(int64(s.Int())%mod - int64(amp))
}

// IntN returns a value in [0, n). Non-positive n returns 0 without drawing.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// IntRange returns a value in the inclusive range [lo, hi].
func (s *Source) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

// Float64 returns a value in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Bool returns true with probability p.
func (s *Source) Bool(p float64) bool {
	return s.rng.Float64() < p
}

// Uniform returns a value in [lo, hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

// Triangular returns a value from the triangular distribution on [lo, hi]
// with the given mode.
func (s *Source) Triangular(lo, hi, mode float64) float64 {
	u := s.rng.Float64()
	c := 0.5
	if hi != lo {
		c = (mode - lo) / (hi - lo)
	}
	if u > c {
		u = 1 - u
		c = 1 - c
		lo, hi = hi, lo
	}
	return lo + (hi-lo)*math.Sqrt(u*c)
}
