package delay

// Sample is the element type accepted by the block shifts.
type Sample interface {
	~int32 | ~int64 | ~float32 | ~float64
}

// Shift delays row by n samples in place. Positive n moves samples toward
// higher indices and zero-fills the head; negative n advances the row and
// zero-fills the tail. |n| >= len(row) clears the row.
func Shift[T Sample](row []T, n int) {
	switch {
	case n == 0:
		return
	case n >= len(row) || -n >= len(row):
		clear(row)
	case n > 0:
		copy(row[n:], row[:len(row)-n])
		clear(row[:n])
	default:
		n = -n
		copy(row, row[n:])
		clear(row[len(row)-n:])
	}
}

// ShiftRows moves a set of equally sized rows down by dy rows and right by dx
// samples, zero-filling what is uncovered. Negative values move up and left.
func ShiftRows[T Sample](rows [][]T, dy, dx int) {
	n := len(rows)
	switch {
	case dy > 0:
		for k := n - 1; k >= 0; k-- {
			if k >= dy {
				copy(rows[k], rows[k-dy])
			} else {
				clear(rows[k])
			}
		}
	case dy < 0:
		for k := 0; k < n; k++ {
			if k-dy < n {
				copy(rows[k], rows[k-dy])
			} else {
				clear(rows[k])
			}
		}
	}

	if dx == 0 {
		return
	}
	for _, r := range rows {
		Shift(r, dx)
	}
}

// Compensate writes a filtered block back with its group delay removed:
// dst[i] = trunc(src[i+n]) for i < len(dst)-n. The last n samples of dst are
// left untouched. n <= 0 writes the whole block without shifting.
func Compensate(dst []int32, src []float64, n int) {
	if n < 0 {
		n = 0
	}
	end := min(len(dst), len(src)) - n
	for i := 0; i < end; i++ {
		dst[i] = int32(src[i+n])
	}
}
