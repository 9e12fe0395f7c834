package ntsc

import (
	"github.com/cwbudde/algo-ntsc/dsp/signal"
	"github.com/cwbudde/algo-ntsc/video"
)

// planes returns a YIQ with every sample set from fill(plane, x, y).
func planes(w, h int, fill func(plane, x, y int) int32) *video.YIQ {
	p := video.NewYIQ(w, h)
	for i, pl := range p.Planes() {
		for y := range h {
			row := p.Row(pl, y)
			for x := range row {
				row[x] = fill(i, x, y)
			}
		}
	}
	return p
}

func constant(yv, iv, qv int32) func(plane, x, y int) int32 {
	return func(plane, _, _ int) int32 {
		return [3]int32{yv, iv, qv}[plane]
	}
}

func clonePlanes(p *video.YIQ) *video.YIQ {
	c := video.NewYIQ(p.Width, p.Height)
	copy(c.Y, p.Y)
	copy(c.I, p.I)
	copy(c.Q, p.Q)
	return c
}

func testSource() *signal.Source {
	return signal.NewSource(1234)
}

type planesUnderTest struct {
	*video.YIQ
	src *signal.Source
}
