// Package resample resizes sampled planes and waveforms.
//
// Coordinates follow the pixel-centre convention: destination sample d maps
// to source position (d+0.5)*srcLen/dstLen - 0.5. Borders clamp to the edge
// sample.
//
// Common workflows:
//   - ResizeLanczos4(dst, dstW, dstH, src, srcW, srcH) for separable 8-tap planes
//   - ResizeLinear(dst, src) for 1-D waveforms
package resample
