package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffFloat32(t *testing.T) {
	d, err := MaxAbsDiff([]float32{1, -2}, []float32{1.5, -2})
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}
	if d != 0.5 {
		t.Fatalf("MaxAbsDiff = %v, want 0.5", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	_, err := MaxAbsDiff([]float64{1}, []float64{1, 2})
	if err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestSameFloat(t *testing.T) {
	negZero := math.Copysign(0, -1)
	tests := []struct {
		a, b float64
		want bool
	}{
		{1, 1, true},
		{0, 0, true},
		{0, negZero, false},
		{negZero, negZero, true},
		{math.NaN(), math.NaN(), true},
		{math.NaN(), 0, false},
		{math.Inf(1), math.Inf(-1), false},
	}
	for _, tt := range tests {
		if got := SameFloat(tt.a, tt.b); got != tt.want {
			t.Errorf("SameFloat(%v, %v) = %t, want %t", tt.a, tt.b, got, tt.want)
		}
	}
}
