package ntsc

import (
	"math"

	"github.com/cwbudde/algo-ntsc/dsp/buffer"
	"github.com/cwbudde/algo-ntsc/dsp/signal"
	"github.com/cwbudde/algo-ntsc/video"
)

var (
	intScratch   = buffer.NewPool[int32]()
	floatScratch = buffer.NewPool[float64]()
)

// LumaNoise adds a halving random walk over draws in [-amp, +amp] to the
// luma rows of field. The walk runs through the field in raster order, so
// its state carries from one row into the next. precise selects the
// sequential walk; otherwise the filtered block form is used. Both consume
// one draw per sample. A zero amplitude is a no-op.
func LumaNoise(p *video.YIQ, field, amp int, src *signal.Source, precise bool) error {
	if err := checkField(field); err != nil {
		return err
	}
	if amp == 0 {
		return nil
	}
	rows := p.Field(nil, p.Y, field)
	addWalk(rows, src, amp, precise)
	return nil
}

func addWalk(rows [][]int32, src *signal.Source, amp int, precise bool) {
	if precise {
		walk := signal.NewWalk(src, amp)
		for _, r := range rows {
			for x := range r {
				r[x] += walk.Next()
			}
		}
		return
	}

	buf := intScratch.Get(fieldLen(rows))
	defer intScratch.Put(buf)
	noise := buf.Data()
	signal.FilteredWalk(noise, src, amp)
	for _, r := range rows {
		for x := range r {
			r[x] += noise[x]
		}
		noise = noise[len(r):]
	}
}

func fieldLen(rows [][]int32) int {
	n := 0
	for _, r := range rows {
		n += len(r)
	}
	return n
}

// ChromaNoise adds independent halving random walks to the I and Q rows of
// field. The precise form interleaves the I and Q draws per sample; the
// filtered form draws the whole I field first, then the Q field.
func ChromaNoise(p *video.YIQ, field, amp int, src *signal.Source, precise bool) error {
	if err := checkField(field); err != nil {
		return err
	}
	if amp == 0 {
		return nil
	}

	iRows := p.Field(nil, p.I, field)
	qRows := p.Field(nil, p.Q, field)
	if !precise {
		addWalk(iRows, src, amp, false)
		addWalk(qRows, src, amp, false)
		return nil
	}

	iw, qw := signal.NewWalk(src, amp), signal.NewWalk(src, amp)
	for y := range iRows {
		ir, qr := iRows[y], qRows[y]
		for x := range ir {
			ir[x] += iw.Next()
			qr[x] += qw.Next()
		}
	}
	return nil
}

// ChromaPhaseNoise rotates the (I, Q) vector of each row of field by
// walk*pi/100 radians, where walk is a halving random walk over draws in
// [-amp, +amp] advanced once per row.
func ChromaPhaseNoise(p *video.YIQ, field, amp int, src *signal.Source) error {
	if err := checkField(field); err != nil {
		return err
	}
	if amp == 0 {
		return nil
	}

	walk := signal.NewWalk(src, amp)
	for y := field; y < p.Height; y += 2 {
		walk.Next()
		sin, cos := math.Sincos(float64(walk.State()) * math.Pi / 100)
		ir, qr := p.Row(p.I, y), p.Row(p.Q, y)
		for x := range ir {
			u, v := float64(ir[x]), float64(qr[x])
			ir[x] = int32(u*cos - v*sin)
			qr[x] = int32(u*sin + v*cos)
		}
	}
	return nil
}

// ChromaLoss clears the chroma of each row of field with probability
// loss/100000.
func ChromaLoss(p *video.YIQ, field, loss int, src *signal.Source) error {
	if err := checkField(field); err != nil {
		return err
	}
	if loss == 0 {
		return nil
	}
	for y := field; y < p.Height; y += 2 {
		if int(src.Int())%100000 < loss {
			clear(p.Row(p.I, y))
			clear(p.Row(p.Q, y))
		}
	}
	return nil
}
