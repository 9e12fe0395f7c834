// Package quality measures how far a processed frame has drifted from its
// source.
//
// Plane statistics use Welford's online update, so [StreamingStats] can be fed
// scanline by scanline and still match [Calculate] exactly. [Compare] reports
// per-channel mean squared error and PSNR between two frames of equal shape.
package quality
