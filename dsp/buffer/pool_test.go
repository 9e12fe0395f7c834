package buffer

import "testing"

func TestPoolReuseIsZeroed(t *testing.T) {
	p := NewPool[complex128]()

	b := p.Get(4)
	b.Data()[0] = 3 + 4i
	p.Put(b)

	b2 := p.Get(6)
	if b2.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", b2.Len())
	}
	for i, v := range b2.Data() {
		if v != 0 {
			t.Fatalf("reused Data()[%d] = %v, want 0", i, v)
		}
	}
	p.Put(b2)
}

func TestPoolPutNilSafe(_ *testing.T) {
	p := NewPool[float64]()
	p.Put(nil)
}
