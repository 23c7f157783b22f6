package vforce

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-vforce/internal/testutil"
)

func TestSinCos(t *testing.T) {
	x := testutil.Ramp[float64](-7, 7, 41)
	sinOut := make([]float64, len(x))
	cosOut := make([]float64, len(x))
	require.NoError(t, SinCos(sinOut, cosOut, x))

	requireNearly(t, "sin", sinOut, x, math.Sin, 1e-10)
	requireNearly(t, "cos", cosOut, x, math.Cos, 1e-10)
}

func TestSinCosFloat32(t *testing.T) {
	x := testutil.Ramp[float32](-7, 7, 41)
	sinOut := make([]float32, len(x))
	cosOut := make([]float32, len(x))
	require.NoError(t, SinCos(sinOut, cosOut, x))

	requireNearly(t, "sin", sinOut, testutil.Widen(x), math.Sin, 1e-6)
	requireNearly(t, "cos", cosOut, testutil.Widen(x), math.Cos, 1e-6)
}

func TestSinCosInPlaceVariants(t *testing.T) {
	orig := testutil.DeterministicUniform[float64](7, -10, 10, 33)

	x := append([]float64(nil), orig...)
	cosOut := make([]float64, len(x))
	require.NoError(t, SinCosInPlaceSin(x, cosOut))
	requireNearly(t, "sin", x, orig, math.Sin, 1e-10)
	requireNearly(t, "cos", cosOut, orig, math.Cos, 1e-10)

	x = append([]float64(nil), orig...)
	sinOut := make([]float64, len(x))
	require.NoError(t, SinCosInPlaceCos(x, sinOut))
	requireNearly(t, "cos", x, orig, math.Cos, 1e-10)
	requireNearly(t, "sin", sinOut, orig, math.Sin, 1e-10)
}

func TestSinCosSingleCallPerWindow(t *testing.T) {
	rec := useRecorder(t)

	x := []float32{1, 2, 3}
	require.NoError(t, SinCosInPlaceCos(x, make([]float32, 3)))

	calls := rec.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, "sincos", calls[0].Op)
	require.Equal(t, 32, calls[0].Precision)
	require.EqualValues(t, 3, calls[0].N)
}

func TestCosISin(t *testing.T) {
	x := []float64{0, math.Pi / 3, -math.Pi / 4, 2}
	out := make([]Complex[float64], len(x))
	require.NoError(t, CosISin(out, x))

	for i, c := range out {
		re, im := c.Unpack()
		require.InDelta(t, math.Cos(x[i]), re, 1e-10, "real part %d", i)
		require.InDelta(t, math.Sin(x[i]), im, 1e-10, "imaginary part %d", i)
	}
}

func TestCosISinFloat32(t *testing.T) {
	x := []float32{0.25, 1, -3}
	out := make([]Complex[float32], len(x))
	require.NoError(t, CosISin(out, x))

	for i, c := range out {
		re, im := c.Unpack()
		require.InDelta(t, math.Cos(float64(x[i])), float64(re), 1e-6)
		require.InDelta(t, math.Sin(float64(x[i])), float64(im), 1e-6)
	}
}

func TestComplexLayout(t *testing.T) {
	var c64 Complex[float64]
	require.EqualValues(t, 16, unsafe.Sizeof(c64))
	require.EqualValues(t, 0, unsafe.Offsetof(c64.real))
	require.EqualValues(t, 8, unsafe.Offsetof(c64.imag))

	var c32 Complex[float32]
	require.EqualValues(t, 8, unsafe.Sizeof(c32))
	require.EqualValues(t, 4, unsafe.Offsetof(c32.imag))

	pair := []Complex[float64]{{real: 1, imag: 2}, {real: 3, imag: 4}}
	flat := unsafe.Slice((*float64)(unsafe.Pointer(&pair[0])), 4)
	require.Equal(t, []float64{1, 2, 3, 4}, flat)
}
