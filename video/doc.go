// Package video holds the frame and colour-space model of the composite
// emulator.
//
// A [Frame] is an interleaved 8-bit B,G,R image with its origin at the top
// left. A [YIQ] is the planar fixed-point form the emulator works on: each of
// Y, I and Q is scaled by 256 and truncated to int32, which mirrors the
// integer precision of the analog reference code.
//
// Interlaced processing touches one field at a time: field 0 is rows
// 0, 2, 4, ... and field 1 is rows 1, 3, 5, ....
package video
