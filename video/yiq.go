package video

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-ntsc/dsp/core"
)

// YIQ is a planar fixed-point Y, I, Q image. Each plane holds Width*Height
// values, row-major.
type YIQ struct {
	Width  int
	Height int
	Y      []int32
	I      []int32
	Q      []int32
}

// NewYIQ returns zeroed planes of the given size.
func NewYIQ(width, height int) *YIQ {
	p := &YIQ{}
	p.Resize(width, height)
	return p
}

// Resize sets the plane dimensions, reusing capacity. Plane contents are
// unspecified afterwards.
func (p *YIQ) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	n := width * height
	p.Width, p.Height = width, height
	p.Y = core.EnsureLen(p.Y, n)
	p.I = core.EnsureLen(p.I, n)
	p.Q = core.EnsureLen(p.Q, n)
}

// Planes returns Y, I and Q in that order.
func (p *YIQ) Planes() [3][]int32 {
	return [3][]int32{p.Y, p.I, p.Q}
}

// Row returns row y of plane.
func (p *YIQ) Row(plane []int32, y int) []int32 {
	return plane[y*p.Width : (y+1)*p.Width]
}

// Field appends the rows of field in plane to dst and returns it. The rows
// alias the plane.
func (p *YIQ) Field(dst [][]int32, plane []int32, field int) [][]int32 {
	dst = dst[:0]
	for y := field; y < p.Height; y += 2 {
		dst = append(dst, p.Row(plane, y))
	}
	return dst
}

// ToYIQ converts f into a new YIQ.
func ToYIQ(f *Frame) (*YIQ, error) {
	p := &YIQ{}
	if err := ToYIQInto(p, f); err != nil {
		return nil, err
	}
	return p, nil
}

// ToYIQInto converts f into dst, resizing dst as needed:
//
//	Y = 0.30R + 0.59G + 0.11B
//	I = 0.74(R-Y) - 0.27(B-Y)
//	Q = 0.48(R-Y) + 0.41(B-Y)
//
// each multiplied by 256 and truncated.
func ToYIQInto(dst *YIQ, f *Frame) error {
	if err := f.Validate(); err != nil {
		return err
	}
	dst.Resize(f.Width, f.Height)

	for i := range f.Width * f.Height {
		b := float64(f.Pix[3*i])
		g := float64(f.Pix[3*i+1])
		r := float64(f.Pix[3*i+2])
		y := 0.30*r + 0.59*g + 0.11*b
		dst.Y[i] = int32(y * 256)
		dst.I[i] = int32(256 * (-0.27*(b-y) + 0.74*(r-y)))
		dst.Q[i] = int32(256 * (0.41*(b-y) + 0.48*(r-y)))
	}
	return nil
}

// FromYIQ writes the rows of field from src into dst, leaving the other
// field's rows untouched:
//
//	R = (Y + 0.956I + 0.621Q) / 256
//	G = (Y - 0.272I - 0.647Q) / 256
//	B = (Y - 1.106I + 1.703Q) / 256
//
// each truncated and clipped to [0, 255].
func FromYIQ(dst *Frame, src *YIQ, field int) error {
	if err := CheckField(field); err != nil {
		return err
	}
	if err := dst.Validate(); err != nil {
		return err
	}
	if dst.Width != src.Width || dst.Height != src.Height {
		return fmt.Errorf("%w: frame %dx%d, planes %dx%d", ErrShapeMismatch, dst.Width, dst.Height, src.Width, src.Height)
	}

	for y := field; y < src.Height; y += 2 {
		base := y * src.Width
		row := dst.Row(y)
		for x := range src.Width {
			yy := float64(src.Y[base+x])
			ii := float64(src.I[base+x])
			qq := float64(src.Q[base+x])
			row[3*x] = toByte((yy - 1.106*ii + 1.703*qq) / 256)
			row[3*x+1] = toByte((yy - 0.272*ii - 0.647*qq) / 256)
			row[3*x+2] = toByte((yy + 0.956*ii + 0.621*qq) / 256)
		}
	}
	return nil
}

func toByte(v float64) uint8 {
	return uint8(core.ClampInt(int64(math.Trunc(v)), 0, 255))
}
