package spectrum

// Shift writes src into dst with the zero-frequency bin moved to index n/2.
// dst and src must not alias.
func Shift[T any](dst, src []T) {
	n := len(src)
	h := n / 2
	for i, v := range src {
		dst[(i+h)%n] = v
	}
}

// InverseShift undoes [Shift]. dst and src must not alias.
func InverseShift[T any](dst, src []T) {
	n := len(src)
	h := n / 2
	for i := range src {
		dst[i] = src[(i+h)%n]
	}
}

// Shift2D applies [Shift] along both axes of a row-major rows x cols plane.
func Shift2D[T any](dst, src []T, rows, cols int) {
	hr, hc := rows/2, cols/2
	for r := range rows {
		dr := (r + hr) % rows
		for c := range cols {
			dst[dr*cols+(c+hc)%cols] = src[r*cols+c]
		}
	}
}

// InverseShift2D undoes [Shift2D].
func InverseShift2D[T any](dst, src []T, rows, cols int) {
	hr, hc := rows/2, cols/2
	for r := range rows {
		sr := (r + hr) % rows
		for c := range cols {
			dst[r*cols+c] = src[sr*cols+(c+hc)%cols]
		}
	}
}
