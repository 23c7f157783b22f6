package vforce

import "github.com/cwbudde/algo-vforce/internal/native"

// Sin computes the sine of each element (radians).
//
// If x is +/-0, the result preserves the signed zero.
// If x is +/-inf, the result is NaN.
func Sin[F Float](out, x []F) error { return unaryOp(native.OpSin, out, x) }

// SinInPlace is the in-place form of Sin.
func SinInPlace[F Float](x []F) error { return unaryInPlace(native.OpSin, x) }

// SinPi computes sin(pi * x) for each element. Results are exact at integer
// and half-integer x.
func SinPi[F Float](out, x []F) error { return unaryOp(native.OpSinpi, out, x) }

// SinPiInPlace is the in-place form of SinPi.
func SinPiInPlace[F Float](x []F) error { return unaryInPlace(native.OpSinpi, x) }

// Cos computes the cosine of each element (radians).
//
// If x is +/-inf, the result is NaN.
func Cos[F Float](out, x []F) error { return unaryOp(native.OpCos, out, x) }

// CosInPlace is the in-place form of Cos.
func CosInPlace[F Float](x []F) error { return unaryInPlace(native.OpCos, x) }

// CosPi computes cos(pi * x) for each element.
func CosPi[F Float](out, x []F) error { return unaryOp(native.OpCospi, out, x) }

// CosPiInPlace is the in-place form of CosPi.
func CosPiInPlace[F Float](x []F) error { return unaryInPlace(native.OpCospi, x) }

// Tan computes the tangent of each element (radians).
//
// If x is +/-0, the result preserves the signed zero.
// If x is +/-inf, the result is NaN.
func Tan[F Float](out, x []F) error { return unaryOp(native.OpTan, out, x) }

// TanInPlace is the in-place form of Tan.
func TanInPlace[F Float](x []F) error { return unaryInPlace(native.OpTan, x) }

// TanPi computes tan(pi * x) for each element.
func TanPi[F Float](out, x []F) error { return unaryOp(native.OpTanpi, out, x) }

// TanPiInPlace is the in-place form of TanPi.
func TanPiInPlace[F Float](x []F) error { return unaryInPlace(native.OpTanpi, x) }

// Asin computes the arcsine of each element.
//
// If x is +/-0, the result preserves the signed zero.
// If |x| > 1, the result is NaN.
func Asin[F Float](out, x []F) error { return unaryOp(native.OpAsin, out, x) }

// AsinInPlace is the in-place form of Asin.
func AsinInPlace[F Float](x []F) error { return unaryInPlace(native.OpAsin, x) }

// Acos computes the arccosine of each element.
//
// If x is 1, the result is +0.
// If |x| > 1, the result is NaN.
func Acos[F Float](out, x []F) error { return unaryOp(native.OpAcos, out, x) }

// AcosInPlace is the in-place form of Acos.
func AcosInPlace[F Float](x []F) error { return unaryInPlace(native.OpAcos, x) }

// Atan computes the arctangent of each element.
//
// If x is +/-0, the result preserves the signed zero.
// If x is +/-inf, the result is +/-pi/2.
func Atan[F Float](out, x []F) error { return unaryOp(native.OpAtan, out, x) }

// AtanInPlace is the in-place form of Atan.
func AtanInPlace[F Float](x []F) error { return unaryInPlace(native.OpAtan, x) }

// Atan2 computes the two-argument arctangent atan2(y[i], x[i]). The signs of
// both arguments determine the quadrant of the result.
//
// Special values:
//
//	y       x       result
//	+/-0    -0      +/-pi
//	+/-0    +0      +/-0
//	+/-0    <0      +/-pi
//	+/-0    >0      +/-0
//	>0      +/-0    +pi/2
//	<0      +/-0    -pi/2
//	+/-y    -inf    +/-pi     (finite y > 0)
//	+/-y    +inf    +/-0      (finite y > 0)
//	+/-inf  x       +/-pi/2   (finite x)
//	+/-inf  -inf    +/-3pi/4
//	+/-inf  +inf    +/-pi/4
func Atan2[F Float](out, y, x []F) error {
	return binaryOp(native.OpAtan2, out, y, x, "x")
}

// Atan2InPlace computes atan2(y[i], x[i]) into y. See Atan2 for special values.
func Atan2InPlace[F Float](y, x []F) error {
	return binaryInPlace(native.OpAtan2, y, x, "x")
}
