package ntsc

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every precondition failure reported by
// this package.
var ErrInvalidArgument = errors.New("ntsc: invalid argument")

var (
	// ErrShapeMismatch indicates source and destination frames of different
	// or malformed shapes.
	ErrShapeMismatch = fmt.Errorf("%w: frame shape mismatch", ErrInvalidArgument)
	// ErrInvalidField indicates a field selector other than 0 or 1.
	ErrInvalidField = fmt.Errorf("%w: field must be 0 or 1", ErrInvalidArgument)
	// ErrTapeSpeed indicates an unknown VHS tape speed.
	ErrTapeSpeed = fmt.Errorf("%w: unknown tape speed", ErrInvalidArgument)
	// ErrPhaseShift indicates a scanline phase shift other than 0, 90, 180 or 270.
	ErrPhaseShift = fmt.Errorf("%w: unsupported scanline phase shift", ErrInvalidArgument)
	// ErrRingingMode indicates an unknown ringing variant.
	ErrRingingMode = fmt.Errorf("%w: unknown ringing mode", ErrInvalidArgument)
)

// ErrRingPattern indicates that no usable ring pattern could be loaded.
var ErrRingPattern = errors.New("ntsc: ring pattern unavailable")

func checkField(field int) error {
	if field != 0 && field != 1 {
		return fmt.Errorf("%w: %d", ErrInvalidField, field)
	}
	return nil
}
