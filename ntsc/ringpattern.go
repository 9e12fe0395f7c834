package ntsc

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/cwbudde/algo-ntsc/internal/npy"
)

//go:embed assets/ringpattern.npy.zst
var ringPatternAsset []byte

var loadRingPattern = sync.OnceValues(func() ([]float64, error) {
	return decodeRingPattern(ringPatternAsset)
})

func decodeRingPattern(compressed []byte) ([]float64, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRingPattern, err)
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRingPattern, err)
	}
	pattern, err := npy.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRingPattern, err)
	}
	if len(pattern) == 0 {
		return nil, fmt.Errorf("%w: empty pattern", ErrRingPattern)
	}
	return pattern, nil
}

// RingPattern returns a copy of the built-in ring pattern: the horizontal
// frequency response, centred on DC, used by RingingPatternPower.
func RingPattern() ([]float64, error) {
	p, err := loadRingPattern()
	if err != nil {
		return nil, err
	}
	return append([]float64(nil), p...), nil
}
