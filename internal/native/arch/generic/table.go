package generic

import (
	"math"
	"unsafe"

	"github.com/cwbudde/algo-vforce/internal/native"
)

var (
	float32Table = newTable[float32]()
	float64Table = newTable[float64]()
)

func init() {
	// A float64 step rounds back to the same float32 value.
	float32Table.Binary[native.OpNextafter] = nextafter32
}

func newTable[F native.Float]() *native.Table[F] {
	t := &native.Table[F]{}

	// Arithmetic and auxiliary
	t.Unary[native.OpCeil] = unary[F](math.Ceil)
	t.Unary[native.OpFloor] = unary[F](math.Floor)
	t.Unary[native.OpFabs] = unary[F](math.Abs)
	t.Unary[native.OpInt] = unary[F](math.Trunc)
	t.Unary[native.OpNint] = unary[F](math.RoundToEven)
	t.Unary[native.OpRsqrt] = unary[F](rsqrt)
	t.Unary[native.OpSqrt] = unary[F](math.Sqrt)
	t.Unary[native.OpRec] = unary[F](rec)

	t.Binary[native.OpPow] = binary[F](math.Pow)
	t.Binary[native.OpDiv] = binary[F](div)
	t.Binary[native.OpCopysign] = binary[F](math.Copysign)
	t.Binary[native.OpFmod] = binary[F](math.Mod)
	t.Binary[native.OpRemainder] = binary[F](math.Remainder)
	t.Binary[native.OpNextafter] = binary[F](math.Nextafter)

	// Exponential and logarithmic
	t.Unary[native.OpExp] = unary[F](math.Exp)
	t.Unary[native.OpExp2] = unary[F](math.Exp2)
	t.Unary[native.OpExpm1] = unary[F](math.Expm1)
	t.Unary[native.OpLog] = unary[F](math.Log)
	t.Unary[native.OpLog1p] = unary[F](math.Log1p)
	t.Unary[native.OpLog2] = unary[F](math.Log2)
	t.Unary[native.OpLog10] = unary[F](math.Log10)
	t.Unary[native.OpLogb] = unary[F](math.Logb)

	// Trigonometric
	t.Unary[native.OpSin] = unary[F](math.Sin)
	t.Unary[native.OpSinpi] = unary[F](sinPi)
	t.Unary[native.OpCos] = unary[F](math.Cos)
	t.Unary[native.OpCospi] = unary[F](cosPi)
	t.Unary[native.OpTan] = unary[F](math.Tan)
	t.Unary[native.OpTanpi] = unary[F](tanPi)
	t.Unary[native.OpAsin] = unary[F](math.Asin)
	t.Unary[native.OpAcos] = unary[F](math.Acos)
	t.Unary[native.OpAtan] = unary[F](math.Atan)
	t.Binary[native.OpAtan2] = binary[F](math.Atan2)
	t.SinCos = sinCos[F]
	t.CosISin = cosISin[F]

	// Hyperbolic
	t.Unary[native.OpSinh] = unary[F](math.Sinh)
	t.Unary[native.OpCosh] = unary[F](math.Cosh)
	t.Unary[native.OpTanh] = unary[F](math.Tanh)
	t.Unary[native.OpAsinh] = unary[F](math.Asinh)
	t.Unary[native.OpAcosh] = unary[F](math.Acosh)
	t.Unary[native.OpAtanh] = unary[F](math.Atanh)

	return t
}

// unary lifts a float64 scalar function to a kernel. float32 elements are
// widened, evaluated in double precision and rounded once on store.
func unary[F native.Float](f func(float64) float64) native.UnaryFunc[F] {
	return func(out, x *F, n int32) {
		dst := unsafe.Slice(out, n)
		src := unsafe.Slice(x, n)
		for i, v := range src {
			dst[i] = F(f(float64(v)))
		}
	}
}

func binary[F native.Float](f func(a, b float64) float64) native.BinaryFunc[F] {
	return func(out, a, b *F, n int32) {
		dst := unsafe.Slice(out, n)
		as := unsafe.Slice(a, n)
		bs := unsafe.Slice(b, n)
		for i := range dst {
			dst[i] = F(f(float64(as[i]), float64(bs[i])))
		}
	}
}

func nextafter32(out, a, b *float32, n int32) {
	dst := unsafe.Slice(out, n)
	as := unsafe.Slice(a, n)
	bs := unsafe.Slice(b, n)
	for i := range dst {
		dst[i] = math.Nextafter32(as[i], bs[i])
	}
}

// sinCos reads x[i] before storing either result, so sinOut or cosOut may alias x.
func sinCos[F native.Float](sinOut, cosOut, x *F, n int32) {
	s := unsafe.Slice(sinOut, n)
	c := unsafe.Slice(cosOut, n)
	src := unsafe.Slice(x, n)
	for i := range src {
		sv, cv := math.Sincos(float64(src[i]))
		s[i] = F(sv)
		c[i] = F(cv)
	}
}

func cosISin[F native.Float](out, x *F, n int32) {
	dst := unsafe.Slice(out, 2*int(n))
	src := unsafe.Slice(x, n)
	for i, v := range src {
		sv, cv := math.Sincos(float64(v))
		dst[2*i] = F(cv)
		dst[2*i+1] = F(sv)
	}
}
