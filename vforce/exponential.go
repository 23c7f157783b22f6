package vforce

import "github.com/cwbudde/algo-vforce/internal/native"

// Exp computes e^x for each element.
//
// If x is +/-0, the result is 1.
// If x is -inf, the result is +0. If x is +inf, the result is +inf.
func Exp[F Float](out, x []F) error { return unaryOp(native.OpExp, out, x) }

// ExpInPlace is the in-place form of Exp.
func ExpInPlace[F Float](x []F) error { return unaryInPlace(native.OpExp, x) }

// Exp2 computes 2^x for each element.
func Exp2[F Float](out, x []F) error { return unaryOp(native.OpExp2, out, x) }

// Exp2InPlace is the in-place form of Exp2.
func Exp2InPlace[F Float](x []F) error { return unaryInPlace(native.OpExp2, x) }

// Expm1 computes e^x - 1, accurate for x near zero.
//
// If x is +/-0, the result preserves the signed zero.
func Expm1[F Float](out, x []F) error { return unaryOp(native.OpExpm1, out, x) }

// Expm1InPlace is the in-place form of Expm1.
func Expm1InPlace[F Float](x []F) error { return unaryInPlace(native.OpExpm1, x) }

// Log computes the natural logarithm of each element.
//
// If x is +/-0, the result is -inf.
// If x < 0, the result is NaN.
func Log[F Float](out, x []F) error { return unaryOp(native.OpLog, out, x) }

// LogInPlace is the in-place form of Log.
func LogInPlace[F Float](x []F) error { return unaryInPlace(native.OpLog, x) }

// Log1p computes ln(1 + x), accurate for x near zero.
//
// If x is -1, the result is -inf.
// If x < -1, the result is NaN.
func Log1p[F Float](out, x []F) error { return unaryOp(native.OpLog1p, out, x) }

// Log1pInPlace is the in-place form of Log1p.
func Log1pInPlace[F Float](x []F) error { return unaryInPlace(native.OpLog1p, x) }

// Log2 computes the base-2 logarithm of each element.
func Log2[F Float](out, x []F) error { return unaryOp(native.OpLog2, out, x) }

// Log2InPlace is the in-place form of Log2.
func Log2InPlace[F Float](x []F) error { return unaryInPlace(native.OpLog2, x) }

// Log10 computes the base-10 logarithm of each element.
func Log10[F Float](out, x []F) error { return unaryOp(native.OpLog10, out, x) }

// Log10InPlace is the in-place form of Log10.
func Log10InPlace[F Float](x []F) error { return unaryInPlace(native.OpLog10, x) }

// Logb extracts the binary exponent of each element as a signed integral value.
//
// If x is +/-0, the result is -inf. If x is +/-inf, the result is +inf.
func Logb[F Float](out, x []F) error { return unaryOp(native.OpLogb, out, x) }

// LogbInPlace is the in-place form of Logb.
func LogbInPlace[F Float](x []F) error { return unaryInPlace(native.OpLogb, x) }
