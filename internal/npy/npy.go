// Package npy decodes one-dimensional NumPy .npy arrays into []float64.
package npy

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/sbinet/npyio"
)

// ErrFormat indicates malformed or unsupported .npy content.
var ErrFormat = errors.New("npy: invalid format")

// Read decodes a .npy stream. The array must be one-dimensional or a single
// row.
func Read(r io.Reader) ([]float64, error) {
	nr, err := npyio.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	shape := nr.Header.Descr.Shape
	if len(shape) != 1 && (len(shape) != 2 || shape[0] != 1) {
		return nil, fmt.Errorf("%w: shape %v", ErrFormat, shape)
	}

	var data []float64
	if err := nr.Read(&data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	return data, nil
}

// Decode parses a complete .npy file held in memory.
func Decode(data []byte) ([]float64, error) {
	return Read(bytes.NewReader(data))
}
