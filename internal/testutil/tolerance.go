package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-ntsc/dsp/core"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair is not core.NearlyEqual within eps.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !core.NearlyEqual(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v, eps %v)", i, got[i], want[i], math.Abs(got[i]-want[i]), eps)
		}
	}
}

// RequireCodesWithin fails t if any pair of integer samples differs by more
// than tol. Pixel bytes and fixed-point YIQ codes both qualify.
func RequireCodesWithin[T ~uint8 | ~int32](t *testing.T, got, want []T, tol int) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		d := int(got[i]) - int(want[i])
		if d < -tol || d > tol {
			t.Fatalf("index %d: got %d, want %d (tolerance %d)", i, got[i], want[i], tol)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[T ~uint8 | ~int32 | ~float64](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(float64(a[i]) - float64(b[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
