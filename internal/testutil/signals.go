package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-vforce/internal/native"
)

// Ramp returns n values evenly spaced over [lo, hi]. n == 1 yields lo.
func Ramp[F native.Float](lo, hi float64, n int) []F {
	out := make([]F, n)
	if n == 1 {
		out[0] = F(lo)
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = F(lo + step*float64(i))
	}
	return out
}

// DeterministicUniform returns n values drawn uniformly from [lo, hi) with a
// fixed seed for reproducibility.
func DeterministicUniform[F native.Float](seed int64, lo, hi float64, n int) []F {
	out := make([]F, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = F(lo + rng.Float64()*(hi-lo))
	}
	return out
}

// Fill returns a slice of length n with every element set to v.
func Fill[F native.Float](v F, n int) []F {
	out := make([]F, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Widen returns the float64 values of x, so references see exactly the
// inputs the kernels saw.
func Widen[F native.Float](x []F) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}
	return out
}
