package ntsc

import (
	"github.com/cwbudde/algo-ntsc/dsp/resample"
	"github.com/cwbudde/algo-ntsc/video"
)

// BlurChroma halves the chroma resolution of field: each of the I and Q
// field planes is resized to half width and half height (at least one
// sample) with a Lanczos-4 kernel, resized back and truncated.
func BlurChroma(p *video.YIQ, field int) error {
	if err := checkField(field); err != nil {
		return err
	}
	fw, fh := p.Width, video.FieldRows(p.Height, field)
	if fw == 0 || fh == 0 {
		return nil
	}
	hw, hh := max(fw/2, 1), max(fh/2, 1)

	full := floatScratch.Get(fw * fh)
	defer floatScratch.Put(full)
	half := floatScratch.Get(hw * hh)
	defer floatScratch.Put(half)
	plane, small := full.Data(), half.Data()

	var rows [][]int32
	for _, ch := range [][]int32{p.I, p.Q} {
		rows = p.Field(rows, ch, field)
		for k, row := range rows {
			loadRow(plane[k*fw:(k+1)*fw], row)
		}
		if err := resample.ResizeLanczos4(small, hw, hh, plane, fw, fh); err != nil {
			return err
		}
		if err := resample.ResizeLanczos4(plane, fw, fh, small, hw, hh); err != nil {
			return err
		}
		for k, row := range rows {
			storeRow(row, plane[k*fw:(k+1)*fw])
		}
	}
	return nil
}
