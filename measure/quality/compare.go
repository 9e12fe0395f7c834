package quality

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-ntsc/video"
)

// ErrShapeMismatch indicates frames of different dimensions.
var ErrShapeMismatch = errors.New("quality: shape mismatch")

// Report holds per-channel errors in B, G, R order plus their pooled value.
type Report struct {
	MSE      [3]float64
	PSNR     [3]float64
	TotalMSE float64
	PSNRdB   float64
}

// PSNR converts a mean squared error on 8-bit samples to decibels. Identical
// inputs give +Inf.
func PSNR(mse float64) float64 {
	if mse <= 0 {
		return math.Inf(1)
	}
	return 10 * math.Log10(255*255/mse)
}

// Compare measures the distortion of got against want.
func Compare(want, got *video.Frame) (Report, error) {
	if err := want.Validate(); err != nil {
		return Report{}, fmt.Errorf("quality: want: %w", err)
	}
	if err := got.Validate(); err != nil {
		return Report{}, fmt.Errorf("quality: got: %w", err)
	}
	if !want.SameShape(got) {
		return Report{}, fmt.Errorf("%w: %dx%d vs %dx%d", ErrShapeMismatch, want.Width, want.Height, got.Width, got.Height)
	}

	var r Report
	var sum [3]float64
	for i, w := range want.Pix {
		d := float64(w) - float64(got.Pix[i])
		sum[i%3] += d * d
	}

	n := float64(want.Width * want.Height)
	total := 0.0
	for c := range sum {
		total += sum[c]
		if n > 0 {
			r.MSE[c] = sum[c] / n
		}
		r.PSNR[c] = PSNR(r.MSE[c])
	}
	if n > 0 {
		r.TotalMSE = total / (3 * n)
	}
	r.PSNRdB = PSNR(r.TotalMSE)
	return r, nil
}

// Planes returns the statistics of the Y, I and Q planes of p.
func Planes(p *video.YIQ) [3]Stats {
	var out [3]Stats
	for i, plane := range p.Planes() {
		out[i] = Calculate(plane)
	}
	return out
}
