package onepole

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-ntsc/dsp/core"
)

// Cascade runs a block through several identical low-pass sections in series.
type Cascade struct {
	sections []*Filter
}

// NewCascade creates passes identical sections at cutoffHz, all sharing the
// same reset level.
func NewCascade(passes int, cutoffHz, reset float64, opts ...core.ProcessorOption) (*Cascade, error) {
	if passes <= 0 {
		return nil, fmt.Errorf("onepole: cascade passes must be > 0: %d", passes)
	}

	c := &Cascade{sections: make([]*Filter, passes)}
	for i := range c.sections {
		f, err := New(cutoffHz, reset, opts...)
		if err != nil {
			return nil, err
		}
		c.sections[i] = f
	}

	return c, nil
}

// Passes returns the number of sections.
func (c *Cascade) Passes() int {
	return len(c.sections)
}

// ProcessBlock filters buf in place through every section.
func (c *Cascade) ProcessBlock(buf []float64) {
	for _, s := range c.sections {
		s.ProcessBlock(buf)
	}
}

// ProcessBlockTo filters src into dst through every section.
func (c *Cascade) ProcessBlockTo(dst, src []float64) {
	copy(dst, src)
	c.ProcessBlock(dst[:len(src)])
}

// Reset returns every section to its reset level.
func (c *Cascade) Reset() {
	for _, s := range c.sections {
		s.Reset()
	}
}

// Response returns the product of the section responses at freqHz.
func (c *Cascade) Response(freqHz float64) complex128 {
	h := complex(1, 0)
	for _, s := range c.sections {
		h *= s.Response(freqHz)
	}
	return h
}

// MagnitudeDB returns the cascade magnitude response in dB at freqHz.
func (c *Cascade) MagnitudeDB(freqHz float64) float64 {
	return core.LinearToDB(cmplx.Abs(c.Response(freqHz)))
}
