// Package onepole provides the single-pole IIR low-pass and high-pass filters
// used to model analog bandwidth limits on composite scanlines.
//
// A low-pass section follows
//
//	tau   = 1 / (2*pi*cutoff)
//	alpha = dt / (tau + dt),  dt = 1/sampleRate
//	y[n]  = alpha*x[n] + (1-alpha)*y[n-1]
//
// with the initial state y[-1] set to an explicit reset level. A reset of
// zero is the natural zero-state recurrence; a non-zero reset seeds the
// filter with a reference level so no transient appears at scanline start.
// The high-pass output is the input minus the low-pass output.
//
// [Cascade] chains identical sections; three passes approximate the steeper
// roll-off of the tape and decoder filters.
package onepole
