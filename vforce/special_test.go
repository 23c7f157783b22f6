package vforce

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-vforce/internal/testutil"
)

var (
	negZero = math.Copysign(0, -1)
	posInf  = math.Inf(1)
	negInf  = math.Inf(-1)
	nan     = math.NaN()
)

// Each row is exact: sign and value, including the sign of zero.
var atan2Table = []struct {
	y, x, want float64
}{
	{0, negZero, math.Pi},
	{negZero, negZero, -math.Pi},
	{0, 0, 0},
	{negZero, 0, negZero},
	{0, -1, math.Pi},
	{negZero, -1, -math.Pi},
	{0, 1, 0},
	{negZero, 1, negZero},
	{1, 0, math.Pi / 2},
	{1, negZero, math.Pi / 2},
	{-1, 0, -math.Pi / 2},
	{-1, negZero, -math.Pi / 2},
	{1, negInf, math.Pi},
	{-1, negInf, -math.Pi},
	{1, posInf, 0},
	{-1, posInf, negZero},
	{posInf, 1, math.Pi / 2},
	{negInf, 1, -math.Pi / 2},
	{posInf, -1, math.Pi / 2},
	{negInf, -1, -math.Pi / 2},
	{posInf, negInf, 3 * math.Pi / 4},
	{negInf, negInf, -3 * math.Pi / 4},
	{posInf, posInf, math.Pi / 4},
	{negInf, posInf, -math.Pi / 4},
}

func TestAtan2SpecialValues(t *testing.T) {
	for _, row := range atan2Table {
		out := make([]float64, 1)
		if err := Atan2(out, []float64{row.y}, []float64{row.x}); err != nil {
			t.Fatal(err)
		}
		testutil.RequireSame(t, out[0], row.want, "atan2(%v, %v)", row.y, row.x)

		y32 := []float32{float32(row.y)}
		if err := Atan2InPlace(y32, []float32{float32(row.x)}); err != nil {
			t.Fatal(err)
		}
		testutil.RequireSame(t, float64(y32[0]), float64(float32(row.want)), "atan2f(%v, %v)", row.y, row.x)
	}
}

func TestUnarySpecialValues(t *testing.T) {
	tests := []struct {
		name string
		f    func(out, x []float64) error
		x    float64
		want float64
	}{
		// Signed zero preserved.
		{"sin(-0)", Sin[float64], negZero, negZero},
		{"tan(-0)", Tan[float64], negZero, negZero},
		{"asin(-0)", Asin[float64], negZero, negZero},
		{"atan(-0)", Atan[float64], negZero, negZero},
		{"sinh(-0)", Sinh[float64], negZero, negZero},
		{"tanh(-0)", Tanh[float64], negZero, negZero},
		{"asinh(-0)", Asinh[float64], negZero, negZero},
		{"atanh(-0)", Atanh[float64], negZero, negZero},
		{"expm1(-0)", Expm1[float64], negZero, negZero},
		{"sqrt(-0)", Sqrt[float64], negZero, negZero},

		// Out of domain.
		{"asin(2)", Asin[float64], 2, nan},
		{"acos(-2)", Acos[float64], -2, nan},
		{"acosh(0.5)", Acosh[float64], 0.5, nan},
		{"atanh(2)", Atanh[float64], 2, nan},
		{"log(-1)", Log[float64], -1, nan},
		{"sqrt(-1)", Sqrt[float64], -1, nan},
		{"sin(inf)", Sin[float64], posInf, nan},
		{"cos(-inf)", Cos[float64], negInf, nan},
		{"tan(inf)", Tan[float64], posInf, nan},

		// Boundaries.
		{"atan(inf)", Atan[float64], posInf, math.Pi / 2},
		{"atan(-inf)", Atan[float64], negInf, -math.Pi / 2},
		{"sinh(-inf)", Sinh[float64], negInf, negInf},
		{"cosh(-inf)", Cosh[float64], negInf, posInf},
		{"cosh(0)", Cosh[float64], 0, 1},
		{"tanh(inf)", Tanh[float64], posInf, 1},
		{"tanh(-inf)", Tanh[float64], negInf, -1},
		{"asinh(-inf)", Asinh[float64], negInf, negInf},
		{"acosh(inf)", Acosh[float64], posInf, posInf},
		{"acosh(1)", Acosh[float64], 1, 0},
		{"acos(1)", Acos[float64], 1, 0},
		{"atanh(1)", Atanh[float64], 1, posInf},
		{"atanh(-1)", Atanh[float64], -1, negInf},
		{"exp(0)", Exp[float64], 0, 1},
		{"exp(-inf)", Exp[float64], negInf, 0},
		{"log(0)", Log[float64], 0, negInf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]float64, 1)
			if err := tt.f(out, []float64{tt.x}); err != nil {
				t.Fatal(err)
			}
			testutil.RequireSame(t, out[0], tt.want, "%s", tt.name)
		})
	}
}

func TestPiFunctionsExact(t *testing.T) {
	x := []float64{0, 0.5, 1, 1.5, 2, -0.5}
	sinOut := make([]float64, len(x))
	cosOut := make([]float64, len(x))
	if err := SinPi(sinOut, x); err != nil {
		t.Fatal(err)
	}
	if err := CosPi(cosOut, x); err != nil {
		t.Fatal(err)
	}

	wantSin := []float64{0, 1, 0, -1, 0, -1}
	wantCos := []float64{1, 0, -1, 0, 1, 0}
	for i := range x {
		if sinOut[i] != wantSin[i] {
			t.Errorf("sinpi(%v) = %v, want %v", x[i], sinOut[i], wantSin[i])
		}
		if cosOut[i] != wantCos[i] {
			t.Errorf("cospi(%v) = %v, want %v", x[i], cosOut[i], wantCos[i])
		}
	}
}

func TestRoundToEvenTies(t *testing.T) {
	x := []float32{0.5, 1.5, 2.5, -0.5, -1.5, 3.7}
	if err := RoundToEvenInPlace(x); err != nil {
		t.Fatal(err)
	}
	want := []float32{0, 2, 2, 0, -2, 4}
	for i := range x {
		if x[i] != want[i] {
			t.Errorf("nint[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}
