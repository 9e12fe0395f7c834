package video

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

var (
	// ErrShapeMismatch indicates frames or planes of different dimensions.
	ErrShapeMismatch = errors.New("video: shape mismatch")
	// ErrInvalidField indicates a field selector other than 0 or 1.
	ErrInvalidField = errors.New("video: field must be 0 or 1")
	// ErrInvalidFrame indicates negative dimensions or a pixel buffer whose
	// length does not match them.
	ErrInvalidFrame = errors.New("video: invalid frame")
)

// Frame is an interleaved B,G,R image. Pix holds Height rows of 3*Width bytes.
type Frame struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewFrame returns a black frame.
func NewFrame(width, height int) *Frame {
	width, height = max(width, 0), max(height, 0)
	return &Frame{Width: width, Height: height, Pix: make([]uint8, width*height*3)}
}

// Stride returns the number of bytes per row.
func (f *Frame) Stride() int {
	return f.Width * 3
}

// Validate checks the dimensions against the pixel buffer.
func (f *Frame) Validate() error {
	if f == nil {
		return fmt.Errorf("%w: nil frame", ErrInvalidFrame)
	}
	if f.Width < 0 || f.Height < 0 || len(f.Pix) != f.Width*f.Height*3 {
		return fmt.Errorf("%w: %dx%d with %d bytes", ErrInvalidFrame, f.Width, f.Height, len(f.Pix))
	}
	return nil
}

// SameShape reports whether f and o have equal dimensions.
func (f *Frame) SameShape(o *Frame) bool {
	return f.Width == o.Width && f.Height == o.Height
}

// Row returns the bytes of row y.
func (f *Frame) Row(y int) []uint8 {
	s := f.Stride()
	return f.Pix[y*s : (y+1)*s]
}

// Clone returns a deep copy.
func (f *Frame) Clone() *Frame {
	pix := make([]uint8, len(f.Pix))
	copy(pix, f.Pix)
	return &Frame{Width: f.Width, Height: f.Height, Pix: pix}
}

// CopyFrom overwrites f with src, reusing f's buffer when it is large enough.
func (f *Frame) CopyFrom(src *Frame) {
	f.Width, f.Height = src.Width, src.Height
	if cap(f.Pix) < len(src.Pix) {
		f.Pix = make([]uint8, len(src.Pix))
	}
	f.Pix = f.Pix[:len(src.Pix)]
	copy(f.Pix, src.Pix)
}

// FromImage converts any image.Image into a Frame.
func FromImage(src image.Image) *Frame {
	b := src.Bounds()
	f := NewFrame(b.Dx(), b.Dy())
	for y := range f.Height {
		for x := range f.Width {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			i := (y*f.Width + x) * 3
			f.Pix[i], f.Pix[i+1], f.Pix[i+2] = c.B, c.G, c.R
		}
	}
	return f
}

// ToImage converts f into an opaque *image.RGBA.
func (f *Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := range f.Height {
		for x := range f.Width {
			i := (y*f.Width + x) * 3
			o := img.PixOffset(x, y)
			img.Pix[o], img.Pix[o+1], img.Pix[o+2], img.Pix[o+3] = f.Pix[i+2], f.Pix[i+1], f.Pix[i], 0xff
		}
	}
	return img
}

// BlackLineWidth is the width of the right-edge black line artifact for a
// frame of the given width: 1.7% of it, truncated.
func BlackLineWidth(width int) int {
	return int(float64(width) * 0.017)
}

// CutRightBorder blanks the last n columns of f. n <= 0 leaves f unchanged.
func CutRightBorder(f *Frame, n int) {
	if n <= 0 {
		return
	}
	n = min(n, f.Width)
	for y := range f.Height {
		row := f.Row(y)
		clear(row[(f.Width-n)*3:])
	}
}

// FieldRows returns the number of scanlines in field of a height-row frame.
func FieldRows(height, field int) int {
	if height <= field {
		return 0
	}
	return (height - field + 1) / 2
}

// CheckField returns ErrInvalidField unless field is 0 or 1.
func CheckField(field int) error {
	if field != 0 && field != 1 {
		return fmt.Errorf("%w: %d", ErrInvalidField, field)
	}
	return nil
}
