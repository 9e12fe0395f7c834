// Package buffer provides reusable scratch storage for scanline and plane
// processing. DSP functions accept raw slices; a Buffer only manages the
// backing array so hot paths avoid per-row allocation.
package buffer
