// Package interp provides interpolation kernels used by the plane and
// waveform resizers.
//
//   - [Linear2]:          2-point linear interpolation
//   - [Lanczos4Weights]:  8-tap Lanczos windowed-sinc (a = 4)
package interp
