package resample

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ntsc/dsp/interp"
)

// ErrInvalidSize indicates a non-positive dimension or a buffer that does not
// match its declared dimensions.
var ErrInvalidSize = errors.New("resample: invalid size")

// ResizeLanczos4 resizes a row-major srcW x srcH plane into dst (dstW x dstH)
// with a separable 8-tap Lanczos kernel, horizontal pass first.
func ResizeLanczos4(dst []float64, dstW, dstH int, src []float64, srcW, srcH int) error {
	if dstW <= 0 || dstH <= 0 || srcW <= 0 || srcH <= 0 {
		return fmt.Errorf("%w: %dx%d -> %dx%d", ErrInvalidSize, srcW, srcH, dstW, dstH)
	}
	if len(src) < srcW*srcH || len(dst) < dstW*dstH {
		return fmt.Errorf("%w: buffers %d/%d", ErrInvalidSize, len(src), len(dst))
	}

	xTaps := lanczosTable(dstW, srcW)
	yTaps := lanczosTable(dstH, srcH)

	tmp := make([]float64, dstW*srcH)
	for y := range srcH {
		row := src[y*srcW : (y+1)*srcW]
		out := tmp[y*dstW : (y+1)*dstW]
		for x := range dstW {
			out[x] = xTaps[x].apply(func(i int) float64 { return row[i] })
		}
	}

	for y := range dstH {
		t := yTaps[y]
		out := dst[y*dstW : (y+1)*dstW]
		for x := range dstW {
			out[x] = t.apply(func(i int) float64 { return tmp[i*dstW+x] })
		}
	}

	return nil
}

type tapSet struct {
	index  [interp.Lanczos4Taps]int
	weight [interp.Lanczos4Taps]float64
}

func (t *tapSet) apply(at func(int) float64) float64 {
	sum := 0.0
	for k, i := range t.index {
		sum += t.weight[k] * at(i)
	}
	return sum
}

func lanczosTable(dstLen, srcLen int) []tapSet {
	scale := float64(srcLen) / float64(dstLen)
	out := make([]tapSet, dstLen)
	for d := range out {
		pos := (float64(d)+0.5)*scale - 0.5
		sx := floorInt(pos)
		interp.Lanczos4Weights(&out[d].weight, pos-float64(sx))
		for k := range out[d].index {
			out[d].index[k] = clampIndex(sx-3+k, srcLen)
		}
	}
	return out
}

// ResizeLinear resamples src into dst with 2-point linear interpolation.
// Source positions before the first sample or past the last one take the
// edge value.
func ResizeLinear(dst, src []float64) error {
	if len(dst) == 0 || len(src) == 0 {
		return fmt.Errorf("%w: %d -> %d", ErrInvalidSize, len(src), len(dst))
	}

	scale := float64(len(src)) / float64(len(dst))
	last := len(src) - 1
	for d := range dst {
		pos := (float64(d)+0.5)*scale - 0.5
		sx := floorInt(pos)
		frac := pos - float64(sx)
		switch {
		case sx < 0:
			dst[d] = src[0]
		case sx >= last:
			dst[d] = src[last]
		default:
			dst[d] = interp.Linear2(frac, src[sx], src[sx+1])
		}
	}
	return nil
}

func floorInt(x float64) int {
	i := int(x)
	if float64(i) > x {
		i--
	}
	return i
}

func clampIndex(i, n int) int {
	return min(max(i, 0), n-1)
}
