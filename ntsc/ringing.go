package ntsc

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ntsc/dsp/core"
	"github.com/cwbudde/algo-ntsc/dsp/resample"
	"github.com/cwbudde/algo-ntsc/dsp/signal"
	"github.com/cwbudde/algo-ntsc/dsp/spectrum"
	"github.com/cwbudde/algo-ntsc/video"
)

// RingingConfig selects and tunes the ringing variant.
type RingingConfig struct {
	Mode RingingMode

	// Alpha is the kept fraction of the spectrum for RingingSpectralMask;
	// 1 keeps the full band.
	Alpha float64
	// NoiseSize in (0, 1) perturbs the mask outside the central
	// (1-NoiseSize) part of the band; 0 disables the perturbation.
	NoiseSize float64
	// NoiseAmplitude scales the mask perturbation.
	NoiseAmplitude float64

	// Power is the exponent applied to the ring pattern for
	// RingingPatternPower; higher values ring harder.
	Power int
	// Shift stretches the pattern by 1+Shift before cropping it to the
	// field width.
	Shift float64
}

// Ringing applies frequency-domain ringing to the Y, I and Q rows of field.
// pattern is only read by RingingPatternPower. The output of each plane is
// clipped to the range of its input.
func Ringing(p *video.YIQ, field int, cfg RingingConfig, pattern []float64, src *signal.Source) error {
	var r ringer
	return r.apply(p, field, cfg, pattern, src)
}

// ringer holds the transform plans and scratch of one field size.
type ringer struct {
	plan                   *spectrum.Plan2D
	rows                   [][]int32
	data, shifted          []complex128
	re, im, maskRe, maskIm []float64
	pattern                []float64
}

func (r *ringer) apply(p *video.YIQ, field int, cfg RingingConfig, pattern []float64, src *signal.Source) error {
	if err := checkField(field); err != nil {
		return err
	}
	if err := cfg.Mode.Validate(); err != nil {
		return err
	}

	rows, cols := video.FieldRows(p.Height, field), p.Width
	if rows == 0 || cols == 0 {
		return nil
	}
	if err := r.prepare(rows, cols); err != nil {
		return err
	}

	for _, plane := range p.Planes() {
		r.rows = p.Field(r.rows, plane, field)
		if cfg.Mode == RingingPatternPower {
			r.patternMask(cols, cfg, pattern)
		} else {
			r.spectralMask(rows, cols, cfg, src)
		}
		if err := r.filter(r.rows, cols); err != nil {
			return err
		}
	}
	return nil
}

func (r *ringer) prepare(rows, cols int) error {
	if r.plan != nil {
		if pr, pc := r.plan.Size(); pr == rows && pc == cols {
			return nil
		}
	}
	plan, err := spectrum.NewPlan2D(rows, cols)
	if err != nil {
		return err
	}
	n := rows * cols
	r.plan = plan
	r.data = make([]complex128, n)
	r.shifted = make([]complex128, n)
	r.re = make([]float64, n)
	r.im = make([]float64, n)
	r.maskRe = make([]float64, n)
	r.maskIm = make([]float64, n)
	return nil
}

// spectralMask builds the centred band-pass mask: columns within
// min(rows/2, 1+alpha*rows/2) of the centre pass, everything else is
// stopped. With a noise size, every mask value outside the central noise
// band gains U*amp/2 - amp/4 for a fresh uniform U, independently for the
// real and imaginary parts.
func (r *ringer) spectralMask(rows, cols int, cfg RingingConfig, src *signal.Source) {
	crow, ccol := rows/2, cols/2
	half := min(crow, int(1+cfg.Alpha*float64(crow)))
	lo, hi := max(ccol-half, 0), min(ccol+half, cols)

	for i := range r.maskRe {
		c := i % cols
		v := 0.0
		if c >= lo && c < hi {
			v = 1
		}
		r.maskRe[i], r.maskIm[i] = v, v
	}

	if cfg.NoiseSize <= 0 {
		return
	}
	start := int(float64(ccol) - (1-cfg.NoiseSize)*float64(ccol))
	stop := int(float64(ccol) + (1-cfg.NoiseSize)*float64(ccol))
	amp := cfg.NoiseAmplitude
	for i := range r.maskRe {
		ure, uim := src.Float64(), src.Float64()
		if c := i % cols; c >= start && c < stop {
			continue
		}
		r.maskRe[i] += ure*amp/2 - amp/4
		r.maskIm[i] += uim*amp/2 - amp/4
	}
}

// patternMask stretches the ring pattern to cols*(1+shift) samples, crops the
// centre cols samples and raises them to the configured power. The mask is
// the same on every row.
func (r *ringer) patternMask(cols int, cfg RingingConfig, pattern []float64) {
	scaled := int(float64(cols) * (1 + cfg.Shift))
	if scaled < 0 {
		scaled = 0
	}
	if cap(r.pattern) < scaled {
		r.pattern = make([]float64, scaled)
	}
	stretched := r.pattern[:scaled]
	if err := resample.ResizeLinear(stretched, pattern); err != nil {
		clear(stretched)
	}

	offset := scaled/2 - cols/2
	width := cols / 2 * 2
	row := r.maskRe[:cols]
	for c := range row {
		v := 0.0
		if i := offset + c; c < width && i >= 0 && i < scaled {
			v = maskPow(stretched[i], cfg.Power)
		}
		row[c] = v
	}
	for off := cols; off < len(r.maskRe); off += cols {
		copy(r.maskRe[off:off+cols], row)
	}
	copy(r.maskIm, r.maskRe)
}

// filter transforms the field plane, applies the centred masks and writes
// the clipped, truncated inverse back into rows.
func (r *ringer) filter(rows [][]int32, cols int) error {
	lo, hi := int32(math.MaxInt32), int32(math.MinInt32)
	for k, row := range rows {
		for c, v := range row {
			r.data[k*cols+c] = complex(float64(v), 0)
			lo, hi = min(lo, v), max(hi, v)
		}
	}

	if err := r.plan.Forward(r.data); err != nil {
		return err
	}
	spectrum.Shift2D(r.shifted, r.data, len(rows), cols)

	spectrum.Split(r.re, r.im, r.shifted)
	vecmath.MulBlockInPlace(r.re, r.maskRe)
	vecmath.MulBlockInPlace(r.im, r.maskIm)
	for i := range r.shifted {
		r.shifted[i] = complex(r.re[i], r.im[i])
	}

	spectrum.InverseShift2D(r.data, r.shifted, len(rows), cols)
	if err := r.plan.Inverse(r.data); err != nil {
		return err
	}

	spectrum.RealPart(r.re, r.data)
	flo, fhi := float64(lo), float64(hi)
	for k, row := range rows {
		for c := range row {
			v := r.re[k*cols+c]
			if math.IsNaN(v) {
				v = flo
			}
			row[c] = int32(core.Clamp(v, flo, fhi))
		}
	}
	return nil
}
