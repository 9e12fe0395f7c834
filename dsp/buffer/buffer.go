package buffer

// Buffer wraps a slice with reuse-friendly semantics.
type Buffer[T any] struct {
	data []T
}

// New returns a zero-filled Buffer of the given length.
func New[T any](length int) *Buffer[T] {
	return &Buffer[T]{data: make([]T, max(length, 0))}
}

// Data returns the underlying slice.
func (b *Buffer[T]) Data() []T {
	return b.data
}

// Len returns the current length.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Resize sets the length to n, reusing capacity when possible. Elements
// exposed by growing are zeroed; retained elements keep their values.
func (b *Buffer[T]) Resize(n int) {
	n = max(n, 0)
	old := len(b.data)
	if n > cap(b.data) {
		grown := make([]T, n)
		copy(grown, b.data)
		b.data = grown
		return
	}
	b.data = b.data[:n]
	if n > old {
		clear(b.data[old:])
	}
}

// Zero clears every element.
func (b *Buffer[T]) Zero() {
	clear(b.data)
}
