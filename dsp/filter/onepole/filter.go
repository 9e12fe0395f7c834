package onepole

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-ntsc/dsp/core"
)

// ErrInvalidCutoff indicates a cutoff frequency that is not positive and finite.
var ErrInvalidCutoff = errors.New("onepole: invalid cutoff frequency")

// Filter is a single-pole low-pass section with a configurable reset level.
type Filter struct {
	cutoff     float64
	sampleRate float64
	alpha      float64
	reset      float64
	state      float64
}

// New creates a low-pass section at cutoffHz. The filter state starts at, and
// Reset returns to, reset. The sample rate defaults to [core.NTSCRate].
func New(cutoffHz, reset float64, opts ...core.ProcessorOption) (*Filter, error) {
	if !(cutoffHz > 0) || math.IsInf(cutoffHz, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCutoff, cutoffHz)
	}

	cfg := core.ApplyProcessorOptions(opts...)

	return &Filter{
		cutoff:     cutoffHz,
		sampleRate: cfg.SampleRate,
		alpha:      Alpha(cutoffHz, cfg.SampleRate),
		reset:      reset,
		state:      reset,
	}, nil
}

// Alpha returns the smoothing coefficient for cutoffHz at sampleRate.
func Alpha(cutoffHz, sampleRate float64) float64 {
	dt := 1 / sampleRate
	tau := 1 / (2 * math.Pi * cutoffHz)
	return dt / (tau + dt)
}

// ProcessSample filters one sample.
func (f *Filter) ProcessSample(x float64) float64 {
	f.state = f.alpha*x + (1-f.alpha)*f.state
	return f.state
}

// ProcessBlock low-pass filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	a, s := f.alpha, f.state
	for i, x := range buf {
		s = a*x + (1-a)*s
		buf[i] = s
	}
	f.state = s
}

// ProcessBlockTo low-pass filters src into dst. dst must be at least as long as src.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1]
	a, s := f.alpha, f.state
	for i, x := range src {
		s = a*x + (1-a)*s
		dst[i] = s
	}
	f.state = s
}

// HighpassBlockTo writes src minus its low-pass response into dst.
func (f *Filter) HighpassBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1]
	a, s := f.alpha, f.state
	for i, x := range src {
		s = a*x + (1-a)*s
		dst[i] = x - s
	}
	f.state = s
}

// Reset restores the state to the reset level.
func (f *Filter) Reset() {
	f.state = f.reset
}

// Alpha returns the smoothing coefficient of the section.
func (f *Filter) Alpha() float64 {
	return f.alpha
}

// Cutoff returns the cutoff frequency in Hz.
func (f *Filter) Cutoff() float64 {
	return f.cutoff
}

// SampleRate returns the sample rate in Hz.
func (f *Filter) SampleRate() float64 {
	return f.sampleRate
}

// Response computes the complex low-pass response at freqHz:
//
//	H(e^jw) = alpha / (1 - (1-alpha) e^-jw)
func (f *Filter) Response(freqHz float64) complex128 {
	w := 2 * math.Pi * freqHz / f.sampleRate
	den := 1 - complex(1-f.alpha, 0)*cmplx.Exp(complex(0, -w))
	return complex(f.alpha, 0) / den
}

// MagnitudeDB returns the low-pass magnitude response in dB at freqHz.
func (f *Filter) MagnitudeDB(freqHz float64) float64 {
	return core.LinearToDB(cmplx.Abs(f.Response(freqHz)))
}

// Lowpass returns a filtered copy of samples using a fresh section.
// An invalid cutoff returns an unfiltered copy.
func Lowpass(samples []float64, cutoffHz, reset, sampleRate float64) []float64 {
	out := make([]float64, len(samples))
	f, err := New(cutoffHz, reset, core.WithSampleRate(sampleRate))
	if err != nil {
		copy(out, samples)
		return out
	}
	f.ProcessBlockTo(out, samples)
	return out
}

// Highpass returns samples minus Lowpass(samples, cutoffHz, reset, sampleRate).
func Highpass(samples []float64, cutoffHz, reset, sampleRate float64) []float64 {
	lp := Lowpass(samples, cutoffHz, reset, sampleRate)
	for i, x := range samples {
		lp[i] = x - lp[i]
	}
	return lp
}
