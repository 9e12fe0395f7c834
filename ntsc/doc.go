// Package ntsc emulates composite NTSC video and VHS tape degradation on
// BGR frames, one interlaced field at a time.
//
// The Engine runs a fixed chain of stages over a planar YIQ copy of the
// source: colour bleed, chroma low-pass, ringing, subcarrier encode, luma
// pre-emphasis and noise, VHS head switching, subcarrier decode, chroma
// noise and dropout, the VHS tape channel and a final chroma blur. Each stage
// is enabled by the Params block and leaves the planes untouched at its
// neutral setting.
//
// The stages are also exported as functions operating in place on a
// [video.YIQ], so they can be composed or tested individually:
//
//	p, _ := video.ToYIQ(frame)
//	_ = ntsc.ChromaIntoLuma(p, 0, 0, 50, ntsc.Phase180, 0)
//	_ = ntsc.ChromaFromLuma(p, 0, 0, 50, ntsc.Phase180, 0)
//
// An Engine carries state between calls (the seeded random source and the
// drifting head-switching point) and must not be used from more than one
// goroutine at a time.
package ntsc
