// Package render assembles full frames from the per-field output of a
// composite layer.
package render

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ntsc/video"
)

// ErrNoFrame indicates a nil destination or source frame.
var ErrNoFrame = errors.New("render: nil frame")

// Layerer renders one field of src into dst. *ntsc.Engine implements it.
type Layerer interface {
	CompositeLayer(dst, src *video.Frame, field, fieldNo int) error
}

// Interlaced renders the even rows of dst from cur and the odd rows from
// next, as two consecutive fields fieldNo and fieldNo+1. A nil next reuses
// cur.
func Interlaced(l Layerer, dst, cur, next *video.Frame, fieldNo int) error {
	if dst == nil || cur == nil {
		return ErrNoFrame
	}
	if next == nil {
		next = cur
	}
	if err := l.CompositeLayer(dst, cur, 0, fieldNo); err != nil {
		return fmt.Errorf("render: field 0: %w", err)
	}
	if err := l.CompositeLayer(dst, next, 1, fieldNo+1); err != nil {
		return fmt.Errorf("render: field 1: %w", err)
	}
	return nil
}

// Progressive renders only the even field of src and rebuilds each odd row
// as the mean of its neighbours. A trailing odd row copies the row above.
func Progressive(l Layerer, dst, src *video.Frame, fieldNo int) error {
	if dst == nil || src == nil {
		return ErrNoFrame
	}
	if err := l.CompositeLayer(dst, src, 0, fieldNo); err != nil {
		return fmt.Errorf("render: field 0: %w", err)
	}

	for y := 1; y < dst.Height; y += 2 {
		row, above := dst.Row(y), dst.Row(y-1)
		if y+1 >= dst.Height {
			copy(row, above)
			continue
		}
		below := dst.Row(y + 1)
		for i := range row {
			row[i] = uint8((uint16(above[i]) + uint16(below[i])) / 2)
		}
	}
	return nil
}
