// Package delay provides integer sample delays on whole blocks.
//
// Unlike a circular delay line, these shifts pad with zeros and crop, so
// samples pushed past either end are lost. They model delay-line
// misalignment between scanline components rather than echoes.
package delay
