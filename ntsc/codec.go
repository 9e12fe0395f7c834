package ntsc

import (
	"github.com/cwbudde/algo-ntsc/dsp/core"
	"github.com/cwbudde/algo-ntsc/video"
)

// Subcarrier multipliers for the four samples of one colour cycle: +I, +Q, -I, -Q.
var (
	iMult = [4]int64{1, 0, -1, 0}
	qMult = [4]int64{0, 1, 0, -1}
)

// scanlinePhase returns the subcarrier phase index (0..3) of frame row y.
func scanlinePhase(shift PhaseShift, fieldNo, offset, y int) int {
	switch shift {
	case Phase90:
		return (fieldNo + offset + y>>1) & 3
	case Phase180:
		return (((fieldNo + y) & 2) + offset) & 3
	case Phase270:
		return (fieldNo + offset) & 3
	default:
		return offset & 3
	}
}

func checkCodec(p *video.YIQ, field int, shift PhaseShift) error {
	if err := checkField(field); err != nil {
		return err
	}
	if err := shift.Validate(); err != nil {
		return err
	}
	if len(p.Y) < p.Width*p.Height || len(p.I) < p.Width*p.Height || len(p.Q) < p.Width*p.Height {
		return ErrShapeMismatch
	}
	return nil
}

// ChromaIntoLuma modulates I and Q onto the luma rows of field and clears
// the chroma planes of those rows:
//
//	Y[x] += floor((I[x]*amp*iMult[k] + Q[x]*amp*qMult[k]) / 50), k = (xi+x) mod 4
//
// where xi is the scanline phase selected by shift, fieldNo and offset.
func ChromaIntoLuma(p *video.YIQ, field, fieldNo, amplitude int, shift PhaseShift, offset int) error {
	if err := checkCodec(p, field, shift); err != nil {
		return err
	}

	amp := int64(amplitude)
	for y := field; y < p.Height; y += 2 {
		yr, ir, qr := p.Row(p.Y, y), p.Row(p.I, y), p.Row(p.Q, y)
		xi := scanlinePhase(shift, fieldNo, offset, y)
		for x := range yr {
			k := (xi + x) & 3
			c := int64(ir[x])*amp*iMult[k] + int64(qr[x])*amp*qMult[k]
			yr[x] += int32(core.FloorDiv(c, 50))
		}
		clear(ir)
		clear(qr)
	}
	return nil
}

// ChromaFromLuma separates the subcarrier from the luma rows of field. A
// four-sample running sum gives the new luma; the residue is sign-corrected
// by phase, scaled by 50/amplitude and sampled into I (even) and Q (odd)
// positions at half resolution, then linearly interpolated. The last two
// columns of I and Q are cleared. A zero amplitude yields zero chroma.
func ChromaFromLuma(p *video.YIQ, field, fieldNo, amplitude int, shift PhaseShift, offset int) error {
	if err := checkCodec(p, field, shift); err != nil {
		return err
	}

	w := p.Width
	chroma := make([]float64, w)
	luma := make([]int32, w)
	for y := field; y < p.Height; y += 2 {
		xi := scanlinePhase(shift, fieldNo, offset, y)
		demodulateRow(p.Row(p.Y, y), p.Row(p.I, y), p.Row(p.Q, y), xi, amplitude, chroma, luma)
	}
	return nil
}

func demodulateRow(yr, ir, qr []int32, xi, amplitude int, chroma []float64, luma []int32) {
	w := len(yr)
	at := func(i int) int32 {
		if i < 0 || i >= w {
			return 0
		}
		return yr[i]
	}

	acc := at(0) + at(1)
	for x := range w {
		ahead := at(x + 2)
		acc += ahead - at(x-2)
		mean := core.FloorDiv(acc, 4)
		luma[x] = mean
		chroma[x] = float64(ahead - mean)
	}
	copy(yr, luma)

	// Undo the negative half of each colour cycle.
	x0 := (4 - xi) & 3
	for x := x0 + 2; x < w; x += 4 {
		chroma[x] = -chroma[x]
	}
	for x := x0 + 3; x < w; x += 4 {
		chroma[x] = -chroma[x]
	}

	if amplitude == 0 {
		clear(chroma)
	} else {
		for x := range chroma {
			chroma[x] = chroma[x] * 50 / float64(amplitude)
		}
	}

	sample := func(i int) int32 {
		if i >= w {
			return 0
		}
		return int32(-chroma[i])
	}
	for x := 0; x < w; x += 2 {
		ir[x] = sample(xi + x)
		qr[x] = sample(xi + 1 + x)
	}
	for x := 1; x < w-2; x += 2 {
		ir[x] = (ir[x-1] + ir[x+1]) >> 1
		qr[x] = (qr[x-1] + qr[x+1]) >> 1
	}
	tail := max(w-2, 0)
	clear(ir[tail:])
	clear(qr[tail:])
}
