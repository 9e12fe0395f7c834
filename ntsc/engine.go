package ntsc

import (
	"fmt"
	"time"

	"github.com/cwbudde/algo-ntsc/dsp/core"
	"github.com/cwbudde/algo-ntsc/dsp/signal"
	"github.com/cwbudde/algo-ntsc/video"
)

// StageHook receives the wall time spent in each executed stage.
type StageHook func(Stage, time.Duration)

type config struct {
	seed       int64
	pattern    []float64
	patternSet bool
	hook       StageHook
}

// Option configures an Engine.
type Option func(*config)

// WithSeed fixes the seed of the engine's random source. Engines built with
// the same seed and parameters produce identical output for the same
// sequence of calls. Without it the seed is taken from the clock.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithRingPattern replaces the built-in ring pattern. The slice is copied.
func WithRingPattern(pattern []float64) Option {
	return func(c *config) {
		c.pattern = append([]float64(nil), pattern...)
		c.patternSet = true
	}
}

// WithStageHook installs a callback invoked after every executed stage.
func WithStageHook(hook StageHook) Option {
	return func(c *config) {
		c.hook = hook
	}
}

// Engine renders composite fields. It owns the random source and the
// head-switching point, both of which advance with every call; an Engine
// must not be used concurrently.
type Engine struct {
	params         Params
	src            *signal.Source
	switchingPoint float64
	pattern        []float64
	hook           StageHook

	yiq  *video.YIQ
	work *video.Frame
	ring ringer
}

// New returns an engine for params. It fails with ErrInvalidArgument for
// bad enumerations and with ErrRingPattern if no ring pattern is available.
func New(params Params, opts ...Option) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	cfg := config{seed: time.Now().UnixNano()}
	for _, opt := range opts {
		opt(&cfg)
	}

	pattern := cfg.pattern
	if !cfg.patternSet {
		p, err := loadRingPattern()
		if err != nil {
			return nil, err
		}
		pattern = p
	}
	if len(pattern) == 0 {
		return nil, fmt.Errorf("%w: empty pattern", ErrRingPattern)
	}

	return &Engine{
		params:         params,
		src:            signal.NewSource(cfg.seed),
		switchingPoint: params.VHSHeadSwitchingPoint,
		pattern:        pattern,
		hook:           cfg.hook,
		yiq:            &video.YIQ{},
		work:           &video.Frame{},
	}, nil
}

// Params returns a copy of the current parameters.
func (e *Engine) Params() Params {
	return e.params
}

// SetParams replaces the parameters used by subsequent calls. A changed
// VHSHeadSwitchingPoint restarts the drifting switching point from it.
func (e *Engine) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.VHSHeadSwitchingPoint != e.params.VHSHeadSwitchingPoint {
		e.switchingPoint = p.VHSHeadSwitchingPoint
	}
	e.params = p
	return nil
}

// SwitchingPoint returns the current head-switching point, a fraction of a
// field.
func (e *Engine) SwitchingPoint() float64 {
	return e.switchingPoint
}

// Seed returns the seed the random source was created with.
func (e *Engine) Seed() int64 {
	return e.src.Seed()
}

// Reseed restarts the random source from seed. The head-switching point
// keeps its position.
func (e *Engine) Reseed(seed int64) {
	e.src.Reseed(seed)
}

// CompositeLayer renders field (0 even rows, 1 odd rows) of src into dst.
// fieldNo selects the subcarrier phase only. Rows of the other field in dst
// are left untouched and src is never modified.
//
// After each call the head-switching point advances by
// VHSHeadSwitchingSpeed/1000, modulo 1.
func (e *Engine) CompositeLayer(dst, src *video.Frame, field, fieldNo int) error {
	if err := checkField(field); err != nil {
		return err
	}
	if dst == nil || src == nil {
		return fmt.Errorf("%w: nil frame", ErrShapeMismatch)
	}
	if err := src.Validate(); err != nil {
		return fmt.Errorf("%w: source: %w", ErrShapeMismatch, err)
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("%w: destination: %w", ErrShapeMismatch, err)
	}
	if !dst.SameShape(src) {
		return fmt.Errorf("%w: dst %dx%d, src %dx%d", ErrShapeMismatch, dst.Width, dst.Height, src.Width, src.Height)
	}

	c := call{dst: dst, src: src, field: field, fieldNo: fieldNo}
	for _, st := range pipeline {
		if st.enabled != nil && !st.enabled(&e.params) {
			continue
		}
		start := time.Now()
		if err := st.run(e, &c); err != nil {
			return fmt.Errorf("ntsc: %s: %w", st.id, err)
		}
		if e.hook != nil {
			e.hook(st.id, time.Since(start))
		}
	}

	e.switchingPoint = core.PosMod(e.switchingPoint+e.params.VHSHeadSwitchingSpeed/1000, 1)
	return nil
}
