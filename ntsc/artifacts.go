package ntsc

import (
	"github.com/cwbudde/algo-ntsc/dsp/core"
	"github.com/cwbudde/algo-ntsc/dsp/delay"
	"github.com/cwbudde/algo-ntsc/dsp/filter/onepole"
	"github.com/cwbudde/algo-ntsc/dsp/signal"
	"github.com/cwbudde/algo-ntsc/video"
)

// ColorBleed shifts the I and Q rows of field down by vert field rows and
// right by horiz samples, zero-filling what is uncovered. Negative values
// shift up and left.
func ColorBleed(p *video.YIQ, field, vert, horiz int) error {
	if err := checkField(field); err != nil {
		return err
	}
	if vert == 0 && horiz == 0 {
		return nil
	}
	var rows [][]int32
	for _, plane := range [][]int32{p.I, p.Q} {
		rows = p.Field(rows, plane, field)
		delay.ShiftRows(rows, vert, horiz)
	}
	return nil
}

// EdgeWave draws one shift in [0, maxWave) per row of field, smooths the
// sequence with a low-pass at lumaCut and shifts the Y, I and Q rows right
// by the truncated result.
func EdgeWave(p *video.YIQ, field, maxWave int, lumaCut float64, src *signal.Source) error {
	if err := checkField(field); err != nil {
		return err
	}
	if maxWave <= 0 {
		return nil
	}

	n := video.FieldRows(p.Height, field)
	buf := floatScratch.Get(n)
	defer floatScratch.Put(buf)
	shifts := buf.Data()
	for i := range shifts {
		shifts[i] = float64(src.IntN(maxWave))
	}

	lp, err := onepole.New(lumaCut, 0)
	if err != nil {
		return err
	}
	lp.ProcessBlock(shifts)

	for k, y := 0, field; y < p.Height; k, y = k+1, y+2 {
		s := int(shifts[k])
		if s == 0 {
			continue
		}
		delay.Shift(p.Row(p.Y, y), s)
		delay.Shift(p.Row(p.I, y), s)
		delay.Shift(p.Row(p.Q, y), s)
	}
	return nil
}

// HeadSwitch positions the head-switching glitch. Point and Phase are
// fractions of a field: Point selects the first affected scanline, Phase
// the horizontal position where the disturbance starts. PhaseNoise is the
// amplitude of a per-call random offset added to both.
type HeadSwitch struct {
	Point      float64
	Phase      float64
	PhaseNoise float64
}

// HeadSwitching displaces the luma rows of field from the switching point
// down to the bottom of the frame. Lines are treated as a tenth wider than
// the picture; the first affected row is shifted from the phase position
// onwards, and the shift decays by 7/8 on every following row of field.
// ntsc selects 262.5-line (NTSC) rather than 312.5-line timing.
func HeadSwitching(p *video.YIQ, field int, hs HeadSwitch, ntsc bool, src *signal.Source) error {
	if err := checkField(field); err != nil {
		return err
	}

	w, h := p.Width, p.Height
	twidth := w + w/10
	if twidth == 0 {
		return nil
	}

	noise := 0.0
	if hs.PhaseNoise != 0 {
		noise = (float64(src.IntRange(1, 2000000000))/1e9 - 1) * hs.PhaseNoise
	}

	lines, blanking := 262.5, (262-240)*2
	if !ntsc {
		lines, blanking = 312.5, (312-288)*2
	}
	t := float64(twidth) * lines

	y := int(core.PosMod(hs.Point+noise, 1)*t)/twidth*2 + field - blanking
	x := int(core.PosMod(hs.Phase+noise, 1)*t) % twidth

	start := x
	initial := x
	if x >= twidth/2 {
		initial = x - twidth
	}

	tmp := make([]int32, twidth)
	shift := 0
	for n := 0; y < h; n++ {
		if y >= 0 && shift != 0 {
			row := p.Row(p.Y, y)
			clear(tmp)
			copy(tmp, row)
			x2 := ((start+shift)%twidth + twidth) % twidth
			for i := start; i < w; i++ {
				row[i] = tmp[x2]
				if x2++; x2 == twidth {
					x2 = 0
				}
			}
		}

		if n == 0 {
			shift = initial
		} else {
			shift = int(float64(shift) * 7 / 8)
		}
		start = 0
		y += 2
	}
	return nil
}
