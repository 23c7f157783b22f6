package cli

import (
	"fmt"
	"slices"

	"github.com/cwbudde/algo-vforce/vforce"
)

// evalFunc runs an operation on freshly allocated outputs. With inPlace set
// the first input is cloned and overwritten instead.
type evalFunc[F vforce.Float] func(inputs [][]F, inPlace bool) ([][]F, error)

type operation struct {
	name    string
	group   string
	fn      string // exported vforce function
	inPlace string // exported in-place variant, empty if none
	inputs  []string
	outputs []string
	domain  [][2]float64 // per input, the range compare samples
	eval64  evalFunc[float64]
	eval32  evalFunc[float32]
}

func unary(name, group, fn string, lo, hi float64,
	f64 func(out, x []float64) error, f64InPlace func(x []float64) error,
	f32 func(out, x []float32) error, f32InPlace func(x []float32) error,
) operation {
	return operation{
		name:    name,
		group:   group,
		fn:      fn,
		inPlace: fn + "InPlace",
		inputs:  []string{"x"},
		outputs: []string{"out"},
		domain:  [][2]float64{{lo, hi}},
		eval64:  unaryEval(f64, f64InPlace),
		eval32:  unaryEval(f32, f32InPlace),
	}
}

func binary(name, fn string, a, b string, domainA, domainB [2]float64,
	f64 func(out, a, b []float64) error, f64InPlace func(a, b []float64) error,
	f32 func(out, a, b []float32) error, f32InPlace func(a, b []float32) error,
) operation {
	return operation{
		name:    name,
		group:   "binary",
		fn:      fn,
		inPlace: fn + "InPlace",
		inputs:  []string{a, b},
		outputs: []string{"out"},
		domain:  [][2]float64{domainA, domainB},
		eval64:  binaryEval(f64, f64InPlace),
		eval32:  binaryEval(f32, f32InPlace),
	}
}

func unaryEval[F vforce.Float](op func(out, x []F) error, inPlace func(x []F) error) evalFunc[F] {
	return func(in [][]F, useInPlace bool) ([][]F, error) {
		if useInPlace {
			x := slices.Clone(in[0])
			return [][]F{x}, inPlace(x)
		}
		out := make([]F, len(in[0]))
		return [][]F{out}, op(out, in[0])
	}
}

func binaryEval[F vforce.Float](op func(out, a, b []F) error, inPlace func(a, b []F) error) evalFunc[F] {
	return func(in [][]F, useInPlace bool) ([][]F, error) {
		if useInPlace {
			a := slices.Clone(in[0])
			return [][]F{a}, inPlace(a, in[1])
		}
		out := make([]F, len(in[0]))
		return [][]F{out}, op(out, in[0], in[1])
	}
}

func sinCosEval[F vforce.Float](in [][]F, useInPlace bool) ([][]F, error) {
	x := in[0]
	cosOut := make([]F, len(x))
	if useInPlace {
		sinOut := slices.Clone(x)
		return [][]F{sinOut, cosOut}, vforce.SinCosInPlaceSin(sinOut, cosOut)
	}
	sinOut := make([]F, len(x))
	return [][]F{sinOut, cosOut}, vforce.SinCos(sinOut, cosOut, x)
}

func cosISinEval[F vforce.Float](in [][]F, useInPlace bool) ([][]F, error) {
	if useInPlace {
		return nil, fmt.Errorf("cosisin has no in-place form")
	}
	x := in[0]
	out := make([]vforce.Complex[F], len(x))
	if err := vforce.CosISin(out, x); err != nil {
		return nil, err
	}
	re := make([]F, len(x))
	im := make([]F, len(x))
	for i, c := range out {
		re[i], im[i] = c.Unpack()
	}
	return [][]F{re, im}, nil
}

var catalog = []operation{
	// Arithmetic and auxiliary
	unary("ceil", "arithmetic", "Ceil", -4, 4, vforce.Ceil[float64], vforce.CeilInPlace[float64], vforce.Ceil[float32], vforce.CeilInPlace[float32]),
	unary("floor", "arithmetic", "Floor", -4, 4, vforce.Floor[float64], vforce.FloorInPlace[float64], vforce.Floor[float32], vforce.FloorInPlace[float32]),
	unary("fabs", "arithmetic", "Abs", -4, 4, vforce.Abs[float64], vforce.AbsInPlace[float64], vforce.Abs[float32], vforce.AbsInPlace[float32]),
	unary("int", "arithmetic", "Trunc", -4, 4, vforce.Trunc[float64], vforce.TruncInPlace[float64], vforce.Trunc[float32], vforce.TruncInPlace[float32]),
	unary("nint", "arithmetic", "RoundToEven", -4, 4, vforce.RoundToEven[float64], vforce.RoundToEvenInPlace[float64], vforce.RoundToEven[float32], vforce.RoundToEvenInPlace[float32]),
	unary("rsqrt", "arithmetic", "Rsqrt", 0.01, 100, vforce.Rsqrt[float64], vforce.RsqrtInPlace[float64], vforce.Rsqrt[float32], vforce.RsqrtInPlace[float32]),
	unary("sqrt", "arithmetic", "Sqrt", 0, 100, vforce.Sqrt[float64], vforce.SqrtInPlace[float64], vforce.Sqrt[float32], vforce.SqrtInPlace[float32]),
	unary("rec", "arithmetic", "Reciprocal", 0.01, 100, vforce.Reciprocal[float64], vforce.ReciprocalInPlace[float64], vforce.Reciprocal[float32], vforce.ReciprocalInPlace[float32]),

	// Exponential and logarithmic
	unary("exp", "exponential", "Exp", -10, 10, vforce.Exp[float64], vforce.ExpInPlace[float64], vforce.Exp[float32], vforce.ExpInPlace[float32]),
	unary("exp2", "exponential", "Exp2", -10, 10, vforce.Exp2[float64], vforce.Exp2InPlace[float64], vforce.Exp2[float32], vforce.Exp2InPlace[float32]),
	unary("expm1", "exponential", "Expm1", -1, 1, vforce.Expm1[float64], vforce.Expm1InPlace[float64], vforce.Expm1[float32], vforce.Expm1InPlace[float32]),
	unary("log", "exponential", "Log", 0.01, 100, vforce.Log[float64], vforce.LogInPlace[float64], vforce.Log[float32], vforce.LogInPlace[float32]),
	unary("log1p", "exponential", "Log1p", -0.9, 10, vforce.Log1p[float64], vforce.Log1pInPlace[float64], vforce.Log1p[float32], vforce.Log1pInPlace[float32]),
	unary("log2", "exponential", "Log2", 0.01, 100, vforce.Log2[float64], vforce.Log2InPlace[float64], vforce.Log2[float32], vforce.Log2InPlace[float32]),
	unary("log10", "exponential", "Log10", 0.01, 100, vforce.Log10[float64], vforce.Log10InPlace[float64], vforce.Log10[float32], vforce.Log10InPlace[float32]),
	unary("logb", "exponential", "Logb", 0.01, 100, vforce.Logb[float64], vforce.LogbInPlace[float64], vforce.Logb[float32], vforce.LogbInPlace[float32]),

	// Trigonometric
	unary("sin", "trig", "Sin", -10, 10, vforce.Sin[float64], vforce.SinInPlace[float64], vforce.Sin[float32], vforce.SinInPlace[float32]),
	unary("sinpi", "trig", "SinPi", -4, 4, vforce.SinPi[float64], vforce.SinPiInPlace[float64], vforce.SinPi[float32], vforce.SinPiInPlace[float32]),
	unary("cos", "trig", "Cos", -10, 10, vforce.Cos[float64], vforce.CosInPlace[float64], vforce.Cos[float32], vforce.CosInPlace[float32]),
	unary("cospi", "trig", "CosPi", -4, 4, vforce.CosPi[float64], vforce.CosPiInPlace[float64], vforce.CosPi[float32], vforce.CosPiInPlace[float32]),
	unary("tan", "trig", "Tan", -1.5, 1.5, vforce.Tan[float64], vforce.TanInPlace[float64], vforce.Tan[float32], vforce.TanInPlace[float32]),
	unary("tanpi", "trig", "TanPi", -0.45, 0.45, vforce.TanPi[float64], vforce.TanPiInPlace[float64], vforce.TanPi[float32], vforce.TanPiInPlace[float32]),
	unary("asin", "trig", "Asin", -1, 1, vforce.Asin[float64], vforce.AsinInPlace[float64], vforce.Asin[float32], vforce.AsinInPlace[float32]),
	unary("acos", "trig", "Acos", -1, 1, vforce.Acos[float64], vforce.AcosInPlace[float64], vforce.Acos[float32], vforce.AcosInPlace[float32]),
	unary("atan", "trig", "Atan", -100, 100, vforce.Atan[float64], vforce.AtanInPlace[float64], vforce.Atan[float32], vforce.AtanInPlace[float32]),

	// Hyperbolic
	unary("sinh", "hyperbolic", "Sinh", -5, 5, vforce.Sinh[float64], vforce.SinhInPlace[float64], vforce.Sinh[float32], vforce.SinhInPlace[float32]),
	unary("cosh", "hyperbolic", "Cosh", -5, 5, vforce.Cosh[float64], vforce.CoshInPlace[float64], vforce.Cosh[float32], vforce.CoshInPlace[float32]),
	unary("tanh", "hyperbolic", "Tanh", -5, 5, vforce.Tanh[float64], vforce.TanhInPlace[float64], vforce.Tanh[float32], vforce.TanhInPlace[float32]),
	unary("asinh", "hyperbolic", "Asinh", -100, 100, vforce.Asinh[float64], vforce.AsinhInPlace[float64], vforce.Asinh[float32], vforce.AsinhInPlace[float32]),
	unary("acosh", "hyperbolic", "Acosh", 1, 100, vforce.Acosh[float64], vforce.AcoshInPlace[float64], vforce.Acosh[float32], vforce.AcoshInPlace[float32]),
	unary("atanh", "hyperbolic", "Atanh", -0.99, 0.99, vforce.Atanh[float64], vforce.AtanhInPlace[float64], vforce.Atanh[float32], vforce.AtanhInPlace[float32]),

	// Binary
	binary("pow", "Pow", "bases", "exponents", [2]float64{0.1, 10}, [2]float64{-3, 3},
		vforce.Pow[float64], vforce.PowInPlace[float64], vforce.Pow[float32], vforce.PowInPlace[float32]),
	binary("div", "Div", "numerator", "denominator", [2]float64{-100, 100}, [2]float64{0.5, 50},
		vforce.Div[float64], vforce.DivInPlace[float64], vforce.Div[float32], vforce.DivInPlace[float32]),
	binary("copysign", "Copysign", "magnitude", "sign", [2]float64{-10, 10}, [2]float64{1, -1},
		vforce.Copysign[float64], vforce.CopysignInPlace[float64], vforce.Copysign[float32], vforce.CopysignInPlace[float32]),
	binary("fmod", "Mod", "numerator", "denominator", [2]float64{-100, 100}, [2]float64{0.5, 7},
		vforce.Mod[float64], vforce.ModInPlace[float64], vforce.Mod[float32], vforce.ModInPlace[float32]),
	binary("remainder", "Remainder", "numerator", "denominator", [2]float64{-100, 100}, [2]float64{0.5, 7},
		vforce.Remainder[float64], vforce.RemainderInPlace[float64], vforce.Remainder[float32], vforce.RemainderInPlace[float32]),
	binary("nextafter", "Nextafter", "x", "direction", [2]float64{-10, 10}, [2]float64{10, -10},
		vforce.Nextafter[float64], vforce.NextafterInPlace[float64], vforce.Nextafter[float32], vforce.NextafterInPlace[float32]),
	binary("atan2", "Atan2", "y", "x", [2]float64{-10, 10}, [2]float64{5, -5},
		vforce.Atan2[float64], vforce.Atan2InPlace[float64], vforce.Atan2[float32], vforce.Atan2InPlace[float32]),

	// Special shapes
	{
		name:    "sincos",
		group:   "trig",
		fn:      "SinCos",
		inPlace: "SinCosInPlaceSin",
		inputs:  []string{"x"},
		outputs: []string{"sin", "cos"},
		domain:  [][2]float64{{-10, 10}},
		eval64:  sinCosEval[float64],
		eval32:  sinCosEval[float32],
	},
	{
		name:    "cosisin",
		group:   "trig",
		fn:      "CosISin",
		inputs:  []string{"x"},
		outputs: []string{"re", "im"},
		domain:  [][2]float64{{-10, 10}},
		eval64:  cosISinEval[float64],
		eval32:  cosISinEval[float32],
	},
}

func lookupOperation(name string) (*operation, error) {
	for i := range catalog {
		if catalog[i].name == name {
			return &catalog[i], nil
		}
	}
	return nil, fmt.Errorf("unknown operation %q (see vvinfo ops)", name)
}
