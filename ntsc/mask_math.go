//go:build !fastmath

package ntsc

import "math"

// maskPow raises a ring-pattern sample in [0, 1] to an integer power.
func maskPow(x float64, power int) float64 {
	return math.Pow(x, float64(power))
}
