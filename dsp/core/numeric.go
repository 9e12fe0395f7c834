package core

import "math"

const defaultEpsilon = 1e-12

// NTSCRate is the NTSC colour subcarrier frequency times four, in Hz. One
// horizontal sample of a composite scanline corresponds to 1/NTSCRate seconds.
const NTSCRate = 315e6 / 88 * 4

// Clamp limits value to [lo, hi]; the bounds may be given in either order.
// NaN passes through unchanged.
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	switch {
	case value < lo:
		return lo
	case value > hi:
		return hi
	}
	return value
}

// ClampInt limits an integer value to the inclusive range [lo, hi].
func ClampInt[T ~int | ~int32 | ~int64](value, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}

	return min(max(value, lo), hi)
}

// FloorDiv divides a by b rounding toward negative infinity.
// b must not be zero.
func FloorDiv[T ~int | ~int32 | ~int64](a, b T) T {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}

	return q
}

// PosMod returns x modulo m with the sign of m, so PosMod(-0.25, 1) = 0.75.
func PosMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}

	return r
}

// NearlyEqual reports whether a and b agree to within eps, either absolutely
// or relative to the larger magnitude. eps <= 0 selects 1e-12.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}
	d := math.Abs(a - b)
	return d <= eps || d <= eps*max(math.Abs(a), math.Abs(b))
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
