package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-vforce/internal/native"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance). NaN matches NaN.
func RequireSliceNearlyEqual[F native.Float](t testing.TB, got, want []F, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		g, w := float64(got[i]), float64(want[i])
		if math.IsNaN(g) && math.IsNaN(w) {
			continue
		}
		if g == w {
			continue
		}
		diff := math.Abs(g - w)
		if !(diff <= eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireSame fails t unless got and want are the same value, including the
// sign of zero. Any NaN matches any NaN.
func RequireSame(t testing.TB, got, want float64, format string, args ...any) {
	t.Helper()
	if SameFloat(got, want) {
		return
	}
	t.Fatalf("%s: got %v (signbit %t), want %v (signbit %t)",
		fmt.Sprintf(format, args...), got, math.Signbit(got), want, math.Signbit(want))
}

// SameFloat reports whether a and b are the same value, including the sign
// of zero. Any NaN matches any NaN.
func SameFloat(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b && math.Signbit(a) == math.Signbit(b)
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff[F native.Float](a, b []F) (float64, error) {
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
