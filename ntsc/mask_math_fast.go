//go:build fastmath

package ntsc

import "github.com/meko-christian/algo-approx"

// maskPow raises a ring-pattern sample in [0, 1] to an integer power via
// exp(power*ln(x)).
func maskPow(x float64, power int) float64 {
	if x <= 0 {
		if power == 0 {
			return 1
		}
		return 0
	}
	return approx.FastExp(float64(power) * approx.FastLog(x))
}
