package interp

import "math"

// Lanczos4Taps is the number of taps of the a = 4 Lanczos kernel.
const Lanczos4Taps = 8

// lanczos4Eps is the fractional offset below which the kernel collapses to
// the centre tap.
const lanczos4Eps = 1.1920929e-07

// Linear2 interpolates from x0 to x1 at t in [0, 1].
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Lanczos4Weights fills w with normalised weights for the taps at
// floor(pos)-3 .. floor(pos)+4, where frac = pos - floor(pos).
func Lanczos4Weights(w *[Lanczos4Taps]float64, frac float64) {
	if frac < lanczos4Eps {
		*w = [Lanczos4Taps]float64{}
		w[3] = 1
		return
	}

	sum := 0.0
	for i := range w {
		d := frac + 3 - float64(i)
		w[i] = lanczos(d, 4)
		sum += w[i]
	}
	for i := range w {
		w[i] /= sum
	}
}

// lanczos evaluates sinc(d) * sinc(d/a) for |d| < a.
func lanczos(d, a float64) float64 {
	if d == 0 {
		return 1
	}
	if math.Abs(d) >= a {
		return 0
	}
	pd := math.Pi * d
	return a * math.Sin(pd) * math.Sin(pd/a) / (pd * pd)
}
