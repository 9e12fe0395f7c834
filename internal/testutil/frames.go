package testutil

// Frames are interleaved B,G,R bytes, row-major, stride 3*width.

// barColors holds the seven 75% SMPTE bars in B,G,R order.
var barColors = [7][3]uint8{
	{192, 192, 192}, // gray
	{0, 192, 192},   // yellow
	{192, 192, 0},   // cyan
	{0, 192, 0},     // green
	{192, 0, 192},   // magenta
	{0, 0, 192},     // red
	{192, 0, 0},     // blue
}

// ColorBars returns a width x height frame of seven vertical SMPTE bars.
func ColorBars(width, height int) []uint8 {
	pix := make([]uint8, width*height*3)
	barWidth := max(width/7, 1)
	for y := range height {
		for x := range width {
			c := barColors[min(x/barWidth, 6)]
			i := (y*width + x) * 3
			pix[i], pix[i+1], pix[i+2] = c[0], c[1], c[2]
		}
	}
	return pix
}

// Solid returns a frame filled with one B,G,R colour.
func Solid(width, height int, b, g, r uint8) []uint8 {
	pix := make([]uint8, width*height*3)
	for i := 0; i < len(pix); i += 3 {
		pix[i], pix[i+1], pix[i+2] = b, g, r
	}
	return pix
}

// GrayRamp returns an achromatic frame whose level rises left to right and
// shifts by row, so no two neighbouring pixels are equal.
func GrayRamp(width, height int) []uint8 {
	pix := make([]uint8, width*height*3)
	for y := range height {
		for x := range width {
			v := uint8((x*255/max(width-1, 1) + 7*y) % 256)
			i := (y*width + x) * 3
			pix[i], pix[i+1], pix[i+2] = v, v, v
		}
	}
	return pix
}

// Stripes returns an achromatic frame of vertical stripes, period pixels
// wide, alternating between lo and hi starting with lo.
func Stripes(width, height, period int, lo, hi uint8) []uint8 {
	pix := make([]uint8, width*height*3)
	period = max(period, 1)
	for y := range height {
		for x := range width {
			v := lo
			if (x/period)%2 == 1 {
				v = hi
			}
			i := (y*width + x) * 3
			pix[i], pix[i+1], pix[i+2] = v, v, v
		}
	}
	return pix
}
