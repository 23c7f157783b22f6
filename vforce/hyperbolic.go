package vforce

import "github.com/cwbudde/algo-vforce/internal/native"

// Sinh computes the hyperbolic sine of each element.
//
// If x is +/-0, the result preserves the signed zero.
// If x is +/-inf, the result is +/-inf.
func Sinh[F Float](out, x []F) error { return unaryOp(native.OpSinh, out, x) }

// SinhInPlace is the in-place form of Sinh.
func SinhInPlace[F Float](x []F) error { return unaryInPlace(native.OpSinh, x) }

// Cosh computes the hyperbolic cosine of each element. Results lie in [1, +inf].
//
// If x is +/-0, the result is 1.
// If x is +/-inf, the result is +inf.
func Cosh[F Float](out, x []F) error { return unaryOp(native.OpCosh, out, x) }

// CoshInPlace is the in-place form of Cosh.
func CoshInPlace[F Float](x []F) error { return unaryInPlace(native.OpCosh, x) }

// Tanh computes the hyperbolic tangent of each element.
//
// If x is +/-0, the result preserves the signed zero.
// If x is +/-inf, the result is +/-1.
func Tanh[F Float](out, x []F) error { return unaryOp(native.OpTanh, out, x) }

// TanhInPlace is the in-place form of Tanh.
func TanhInPlace[F Float](x []F) error { return unaryInPlace(native.OpTanh, x) }

// Asinh computes the inverse hyperbolic sine of each element.
//
// If x is +/-0, the result preserves the signed zero.
// If x is +/-inf, the result is +/-inf.
func Asinh[F Float](out, x []F) error { return unaryOp(native.OpAsinh, out, x) }

// AsinhInPlace is the in-place form of Asinh.
func AsinhInPlace[F Float](x []F) error { return unaryInPlace(native.OpAsinh, x) }

// Acosh computes the inverse hyperbolic cosine of each element. Results lie in [0, +inf].
//
// If x is 1, the result is +0.
// If x < 1, the result is NaN.
// If x is +inf, the result is +inf.
func Acosh[F Float](out, x []F) error { return unaryOp(native.OpAcosh, out, x) }

// AcoshInPlace is the in-place form of Acosh.
func AcoshInPlace[F Float](x []F) error { return unaryInPlace(native.OpAcosh, x) }

// Atanh computes the inverse hyperbolic tangent of each element.
//
// If x is +/-0, the result preserves the signed zero.
// If x is +/-1, the result is +/-inf.
// If |x| > 1, the result is NaN.
func Atanh[F Float](out, x []F) error { return unaryOp(native.OpAtanh, out, x) }

// AtanhInPlace is the in-place form of Atanh.
func AtanhInPlace[F Float](x []F) error { return unaryInPlace(native.OpAtanh, x) }
