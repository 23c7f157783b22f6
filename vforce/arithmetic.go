package vforce

import "github.com/cwbudde/algo-vforce/internal/native"

// Pow computes out[i] = bases[i] ^ exponents[i].
func Pow[F Float](out, bases, exponents []F) error {
	return binaryOp(native.OpPow, out, bases, exponents, "exponents")
}

// PowInPlace computes bases[i] = bases[i] ^ exponents[i].
func PowInPlace[F Float](bases, exponents []F) error {
	return binaryInPlace(native.OpPow, bases, exponents, "exponents")
}

// Div computes out[i] = numerator[i] / denominator[i].
func Div[F Float](out, numerator, denominator []F) error {
	return binaryOp(native.OpDiv, out, numerator, denominator, "denominator")
}

// DivInPlace computes numerator[i] = numerator[i] / denominator[i].
func DivInPlace[F Float](numerator, denominator []F) error {
	return binaryInPlace(native.OpDiv, numerator, denominator, "denominator")
}

// Copysign writes the magnitude of magnitude[i] with the sign of sign[i] to out[i].
func Copysign[F Float](out, magnitude, sign []F) error {
	return binaryOp(native.OpCopysign, out, magnitude, sign, "sign")
}

// CopysignInPlace gives magnitude[i] the sign of sign[i].
func CopysignInPlace[F Float](magnitude, sign []F) error {
	return binaryInPlace(native.OpCopysign, magnitude, sign, "sign")
}

// Mod computes the floating-point remainder of numerator[i] / denominator[i]
// (C fmod). The result has the sign of the numerator.
func Mod[F Float](out, numerator, denominator []F) error {
	return binaryOp(native.OpFmod, out, numerator, denominator, "denominator")
}

// ModInPlace is the in-place form of Mod, overwriting numerator.
func ModInPlace[F Float](numerator, denominator []F) error {
	return binaryInPlace(native.OpFmod, numerator, denominator, "denominator")
}

// Remainder computes the IEEE 754 remainder of numerator[i] / denominator[i],
// rounding the quotient to the nearest integer.
func Remainder[F Float](out, numerator, denominator []F) error {
	return binaryOp(native.OpRemainder, out, numerator, denominator, "denominator")
}

// RemainderInPlace is the in-place form of Remainder, overwriting numerator.
func RemainderInPlace[F Float](numerator, denominator []F) error {
	return binaryInPlace(native.OpRemainder, numerator, denominator, "denominator")
}

// Nextafter writes the next representable value after x[i] in the direction
// of direction[i] to out[i]. If x[i] == direction[i], the result is x[i].
func Nextafter[F Float](out, x, direction []F) error {
	return binaryOp(native.OpNextafter, out, x, direction, "direction")
}

// NextafterInPlace is the in-place form of Nextafter, overwriting x.
func NextafterInPlace[F Float](x, direction []F) error {
	return binaryInPlace(native.OpNextafter, x, direction, "direction")
}

// Ceil rounds each element up to an integral value.
func Ceil[F Float](out, x []F) error { return unaryOp(native.OpCeil, out, x) }

// CeilInPlace rounds each element of x up.
func CeilInPlace[F Float](x []F) error { return unaryInPlace(native.OpCeil, x) }

// Floor rounds each element down to an integral value.
func Floor[F Float](out, x []F) error { return unaryOp(native.OpFloor, out, x) }

// FloorInPlace rounds each element of x down.
func FloorInPlace[F Float](x []F) error { return unaryInPlace(native.OpFloor, x) }

// Abs computes |x[i]|.
func Abs[F Float](out, x []F) error { return unaryOp(native.OpFabs, out, x) }

// AbsInPlace replaces each element of x by its absolute value.
func AbsInPlace[F Float](x []F) error { return unaryInPlace(native.OpFabs, x) }

// Trunc rounds each element toward zero.
func Trunc[F Float](out, x []F) error { return unaryOp(native.OpInt, out, x) }

// TruncInPlace rounds each element of x toward zero.
func TruncInPlace[F Float](x []F) error { return unaryInPlace(native.OpInt, x) }

// RoundToEven rounds each element to the nearest integer, ties to even.
func RoundToEven[F Float](out, x []F) error { return unaryOp(native.OpNint, out, x) }

// RoundToEvenInPlace rounds each element of x to the nearest integer, ties to even.
func RoundToEvenInPlace[F Float](x []F) error { return unaryInPlace(native.OpNint, x) }

// Rsqrt computes 1/sqrt(x[i]).
//
// If x is +/-0, the result is +/-inf.
// If x < 0, the result is NaN.
func Rsqrt[F Float](out, x []F) error { return unaryOp(native.OpRsqrt, out, x) }

// RsqrtInPlace is the in-place form of Rsqrt.
func RsqrtInPlace[F Float](x []F) error { return unaryInPlace(native.OpRsqrt, x) }

// Sqrt computes the square root of each element.
//
// If x is +/-0, the result preserves the signed zero.
// If x < 0, the result is NaN.
func Sqrt[F Float](out, x []F) error { return unaryOp(native.OpSqrt, out, x) }

// SqrtInPlace is the in-place form of Sqrt.
func SqrtInPlace[F Float](x []F) error { return unaryInPlace(native.OpSqrt, x) }

// Reciprocal computes 1/x[i].
func Reciprocal[F Float](out, x []F) error { return unaryOp(native.OpRec, out, x) }

// ReciprocalInPlace is the in-place form of Reciprocal.
func ReciprocalInPlace[F Float](x []F) error { return unaryInPlace(native.OpRec, x) }
