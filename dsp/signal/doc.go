// Package signal provides the deterministic random sources behind analog
// noise emulation.
//
// [Source] draws integers in [0, MaxInt32) plus the uniform and triangular
// variates used by parameter presets. [Walk] is the halving random walk that
// models band-limited video noise: each step adds a draw from
// [-amp, +amp] to an accumulator and halves it, truncating toward zero.
// [FilteredWalk] computes the same process as a first-order IIR over a whole
// block of draws; it consumes the same number of draws and stays within two
// codes of the sequential form.
package signal
