// Package spectrum provides Fourier transforms of arbitrary length and
// spectrum-domain helpers for image planes.
//
// [Plan] wraps an algo-fft plan. Power-of-two lengths use it directly; any
// other length goes through Bluestein's chirp-z algorithm on a padded
// power-of-two plan, so scanline widths such as 720 or 243 field rows need no
// padding by the caller. [Plan2D] applies a row/column decomposition to a
// row-major plane. [Shift2D] and [InverseShift2D] move the zero-frequency bin
// to and from the centre of a plane.
package spectrum
