package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ErrInvalidLength indicates a transform length that is not positive or a
// buffer shorter than the plan length.
var ErrInvalidLength = errors.New("spectrum: invalid transform length")

// Plan computes forward and normalised inverse DFTs of a fixed length.
// A Plan holds scratch memory and must not be used concurrently.
type Plan struct {
	n int

	direct *algofft.Plan[complex128]

	// Bluestein state, used when n is not a power of two.
	inner  *algofft.Plan[complex128]
	chirp  []complex128
	kernel []complex128
	work   []complex128
	conj   []complex128
}

// NewPlan prepares a transform of length n.
func NewPlan(n int) (*Plan, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	p := &Plan{n: n, conj: make([]complex128, n)}
	if n == 1 {
		return p, nil
	}

	if isPowerOf2(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
		}
		p.direct = plan
		return p, nil
	}

	m := nextPowerOf2(2*n - 1)
	inner, err := algofft.NewPlan64(m)
	if err != nil {
		return nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	p.inner = inner
	p.chirp = make([]complex128, n)
	p.kernel = make([]complex128, m)
	p.work = make([]complex128, m)

	// chirp[k] = exp(-i*pi*k^2/n); k^2 is reduced mod 2n to keep the angle small.
	mod := uint64(2 * n)
	for k := range n {
		sq := (uint64(k) * uint64(k)) % mod
		angle := -math.Pi * float64(sq) / float64(n)
		p.chirp[k] = complex(math.Cos(angle), math.Sin(angle))
	}

	p.kernel[0] = conjugate(p.chirp[0])
	for k := 1; k < n; k++ {
		c := conjugate(p.chirp[k])
		p.kernel[k] = c
		p.kernel[m-k] = c
	}
	if err := inner.Forward(p.kernel, p.kernel); err != nil {
		return nil, fmt.Errorf("spectrum: chirp kernel transform: %w", err)
	}

	return p, nil
}

// Len returns the transform length.
func (p *Plan) Len() int {
	return p.n
}

// Forward computes dst[k] = sum_j src[j] exp(-2*pi*i*j*k/n).
// dst and src may alias.
func (p *Plan) Forward(dst, src []complex128) error {
	if len(dst) < p.n || len(src) < p.n {
		return fmt.Errorf("%w: buffers %d/%d, plan %d", ErrInvalidLength, len(dst), len(src), p.n)
	}

	switch {
	case p.n == 1:
		dst[0] = src[0]
		return nil
	case p.direct != nil:
		return p.direct.Forward(dst[:p.n], src[:p.n])
	}

	w := p.work
	for j := range p.n {
		w[j] = src[j] * p.chirp[j]
	}
	clear(w[p.n:])

	if err := p.inner.Forward(w, w); err != nil {
		return err
	}
	for i := range w {
		w[i] *= p.kernel[i]
	}
	if err := p.inner.Inverse(w, w); err != nil {
		return err
	}

	for k := range p.n {
		dst[k] = w[k] * p.chirp[k]
	}
	return nil
}

// Inverse computes the normalised inverse transform, so Inverse(Forward(x)) = x.
// dst and src may alias.
func (p *Plan) Inverse(dst, src []complex128) error {
	if len(dst) < p.n || len(src) < p.n {
		return fmt.Errorf("%w: buffers %d/%d, plan %d", ErrInvalidLength, len(dst), len(src), p.n)
	}

	switch {
	case p.n == 1:
		dst[0] = src[0]
		return nil
	case p.direct != nil:
		return p.direct.Inverse(dst[:p.n], src[:p.n])
	}

	for i := range p.n {
		p.conj[i] = conjugate(src[i])
	}
	if err := p.Forward(dst, p.conj); err != nil {
		return err
	}

	scale := 1 / float64(p.n)
	for i := range p.n {
		c := dst[i]
		dst[i] = complex(real(c)*scale, -imag(c)*scale)
	}
	return nil
}

func conjugate(c complex128) complex128 {
	return complex(real(c), -imag(c))
}

func isPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
