package ntsc

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-ntsc/dsp/delay"
	"github.com/cwbudde/algo-ntsc/dsp/filter/onepole"
	"github.com/cwbudde/algo-ntsc/dsp/signal"
	"github.com/cwbudde/algo-ntsc/video"
)

// Every filter chain in the pipeline runs three identical single-pole
// sections per scanline.
const chainPasses = 3

// Composite chroma low-pass bands: I keeps more bandwidth than Q.
const (
	compositeICut   = 1300000.0
	compositeIDelay = 2
	compositeQCut   = 600000.0
	compositeQDelay = 4
	tvChromaCut     = 2600000.0
	tvChromaDelay   = 1
)

// lumaReemphasis is the high-pass gain the VHS playback path adds back to
// its band-limited luma.
const lumaReemphasis = 1.6

func loadRow(dst []float64, row []int32) {
	for i, v := range row {
		dst[i] = float64(v)
	}
}

func storeRow(dst []int32, src []float64) {
	for i, v := range src {
		dst[i] = int32(v)
	}
}

// lowpassRows filters each row through a fresh cascade and writes it back
// advanced by the chain delay; the last delay samples keep their values.
func lowpassRows(rows [][]int32, c *onepole.Cascade, lag int) {
	if len(rows) == 0 {
		return
	}
	buf := floatScratch.Get(len(rows[0]))
	defer floatScratch.Put(buf)
	tmp := buf.Data()

	for _, row := range rows {
		c.Reset()
		loadRow(tmp, row)
		c.ProcessBlock(tmp)
		delay.Compensate(row, tmp, lag)
	}
}

func chromaLowpass(p *video.YIQ, field int, iCut float64, iLag int, qCut float64, qLag int) error {
	if err := checkField(field); err != nil {
		return err
	}
	ic, err := onepole.NewCascade(chainPasses, iCut, 0)
	if err != nil {
		return err
	}
	qc, err := onepole.NewCascade(chainPasses, qCut, 0)
	if err != nil {
		return err
	}
	lowpassRows(p.Field(nil, p.I, field), ic, iLag)
	lowpassRows(p.Field(nil, p.Q, field), qc, qLag)
	return nil
}

// CompositeChromaLowpass band-limits the chroma rows of field the way a
// composite encoder does: I to 1.3 MHz (2-sample delay), Q to 0.6 MHz
// (4-sample delay), both delay compensated.
func CompositeChromaLowpass(p *video.YIQ, field int) error {
	return chromaLowpass(p, field, compositeICut, compositeIDelay, compositeQCut, compositeQDelay)
}

// TVChromaLowpass is the lighter receiver-side chroma filter: I and Q to
// 2.6 MHz with a 1-sample delay.
func TVChromaLowpass(p *video.YIQ, field int) error {
	return chromaLowpass(p, field, tvChromaCut, tvChromaDelay, tvChromaCut, tvChromaDelay)
}

// Preemphasis boosts high luma frequencies of field:
//
//	Y = trunc(Y + highpass(Y, cutoff, reset=16) * amount)
func Preemphasis(p *video.YIQ, field int, amount, cutoff float64) error {
	if err := checkField(field); err != nil {
		return err
	}
	if amount == 0 || cutoff <= 0 {
		return nil
	}
	f, err := onepole.New(cutoff, 16)
	if err != nil {
		return err
	}

	buf := floatScratch.Get(2 * p.Width)
	defer floatScratch.Put(buf)
	s, hp := buf.Data()[:p.Width], buf.Data()[p.Width:]
	for y := field; y < p.Height; y += 2 {
		row := p.Row(p.Y, y)
		f.Reset()
		loadRow(s, row)
		f.HighpassBlockTo(hp, s)
		vecmath.ScaleBlock(hp, hp, amount)
		vecmath.AddBlockInPlace(s, hp)
		storeRow(row, s)
	}
	return nil
}

// VHSLumaLowpass limits the luma rows of field to the tape luma bandwidth
// and re-emphasises the remaining high frequencies:
//
//	f = lowpass^3(Y, cut, reset=16)
//	Y = trunc(f + highpass(f, cut, reset=16) * 1.6)
func VHSLumaLowpass(p *video.YIQ, field int, lumaCut float64) error {
	if err := checkField(field); err != nil {
		return err
	}
	chain, err := onepole.NewCascade(chainPasses, lumaCut, 16)
	if err != nil {
		return err
	}
	hpf, err := onepole.New(lumaCut, 16)
	if err != nil {
		return err
	}

	buf := floatScratch.Get(2 * p.Width)
	defer floatScratch.Put(buf)
	f, hp := buf.Data()[:p.Width], buf.Data()[p.Width:]
	for y := field; y < p.Height; y += 2 {
		row := p.Row(p.Y, y)
		chain.Reset()
		hpf.Reset()
		loadRow(f, row)
		chain.ProcessBlock(f)
		hpf.HighpassBlockTo(hp, f)
		vecmath.ScaleBlock(hp, hp, lumaReemphasis)
		vecmath.AddBlockInPlace(f, hp)
		storeRow(row, f)
	}
	return nil
}

// VHSChromaLowpass limits the chroma rows of field to the tape chroma
// bandwidth and advances them by the chroma delay.
func VHSChromaLowpass(p *video.YIQ, field int, chromaCut float64, chromaDelay int) error {
	return chromaLowpass(p, field, chromaCut, chromaDelay, chromaCut, chromaDelay)
}

// VHSChromaVertBlend averages the chroma of each row of field with the
// previous row of the same field, rounding half up. The first row of the
// field is kept as is: it has no predecessor, and blending it with an empty
// delay line would halve its chroma.
func VHSChromaVertBlend(p *video.YIQ, field int) error {
	if err := checkField(field); err != nil {
		return err
	}
	for _, plane := range [][]int32{p.I, p.Q} {
		rows := p.Field(nil, plane, field)
		for k := len(rows) - 1; k > 0; k-- {
			cur, prev := rows[k], rows[k-1]
			for x := range cur {
				cur[x] = (prev[x] + cur[x] + 1) >> 1
			}
		}
	}
	return nil
}

// VHSSharpen applies the playback unsharp mask to the luma rows of field:
//
//	Y = trunc(Y + (Y - lowpass^3(Y, 4*cut)) * 2*amount)
func VHSSharpen(p *video.YIQ, field int, lumaCut, amount float64) error {
	if err := checkField(field); err != nil {
		return err
	}
	chain, err := onepole.NewCascade(chainPasses, 4*lumaCut, 0)
	if err != nil {
		return err
	}

	buf := floatScratch.Get(2 * p.Width)
	defer floatScratch.Put(buf)
	s, ts := buf.Data()[:p.Width], buf.Data()[p.Width:]
	for y := field; y < p.Height; y += 2 {
		row := p.Row(p.Y, y)
		chain.Reset()
		loadRow(s, row)
		chain.ProcessBlockTo(ts, s)
		// ts = (s - ts) * 2*amount
		vecmath.ScaleBlock(ts, ts, -1)
		vecmath.AddBlockInPlace(ts, s)
		vecmath.ScaleBlock(ts, ts, 2*amount)
		vecmath.AddBlockInPlace(s, ts)
		storeRow(row, s)
	}
	return nil
}

// VHSConfig is the tape channel configuration.
type VHSConfig struct {
	Speed           TapeSpeed
	EdgeWave        int
	Sharpen         float64
	ChromaVertBlend bool
	// SVideoOut skips re-encoding the output as composite.
	SVideoOut bool
	NTSC      bool

	SubcarrierAmplitude int
	PhaseShift          PhaseShift
	PhaseOffset         int
}

// EmulateVHS runs the tape channel over field: edge wave, luma and chroma
// band limits, vertical chroma blend (NTSC only), sharpening, and unless
// SVideoOut a second composite encode/decode.
func EmulateVHS(p *video.YIQ, field, fieldNo int, cfg VHSConfig, src *signal.Source) error {
	prof, err := cfg.Speed.Profile()
	if err != nil {
		return err
	}

	if cfg.EdgeWave != 0 {
		if err := EdgeWave(p, field, cfg.EdgeWave, prof.LumaCut, src); err != nil {
			return err
		}
	}
	if err := VHSLumaLowpass(p, field, prof.LumaCut); err != nil {
		return err
	}
	if err := VHSChromaLowpass(p, field, prof.ChromaCut, prof.ChromaDelay); err != nil {
		return err
	}
	if cfg.ChromaVertBlend && cfg.NTSC {
		if err := VHSChromaVertBlend(p, field); err != nil {
			return err
		}
	}
	if err := VHSSharpen(p, field, prof.LumaCut, cfg.Sharpen); err != nil {
		return err
	}
	if cfg.SVideoOut {
		return nil
	}
	if err := ChromaIntoLuma(p, field, fieldNo, cfg.SubcarrierAmplitude, cfg.PhaseShift, cfg.PhaseOffset); err != nil {
		return err
	}
	return ChromaFromLuma(p, field, fieldNo, cfg.SubcarrierAmplitude, cfg.PhaseShift, cfg.PhaseOffset)
}
