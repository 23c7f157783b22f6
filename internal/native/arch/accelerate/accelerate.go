//go:build darwin && cgo && !purego

package accelerate

/*
#cgo LDFLAGS: -framework Accelerate
#include <Accelerate/Accelerate.h>

typedef void (*vf_unary_f)(float *, const float *, const int *);
typedef void (*vf_unary_d)(double *, const double *, const int *);
typedef void (*vf_binary_f)(float *, const float *, const float *, const int *);
typedef void (*vf_binary_d)(double *, const double *, const double *, const int *);

static void vf_call_unary_f(vf_unary_f fn, float *out, const float *x, int n) {
	fn(out, x, &n);
}
static void vf_call_unary_d(vf_unary_d fn, double *out, const double *x, int n) {
	fn(out, x, &n);
}
static void vf_call_binary_f(vf_binary_f fn, float *out, const float *a, const float *b, int n) {
	fn(out, a, b, &n);
}
static void vf_call_binary_d(vf_binary_d fn, double *out, const double *a, const double *b, int n) {
	fn(out, a, b, &n);
}

static void vf_sincos_f(float *s, float *c, const float *x, int n) {
	vvsincosf(s, c, x, &n);
}
static void vf_sincos_d(double *s, double *c, const double *x, int n) {
	vvsincos(s, c, x, &n);
}

// The complex outputs are two adjacent reals (real, imaginary).
static void vf_cosisin_f(float *out, const float *x, int n) {
	vvcosisinf((void *)out, x, &n);
}
static void vf_cosisin_d(double *out, const double *x, int n) {
	vvcosisin((void *)out, x, &n);
}
*/
import "C"

import (
	"unsafe"

	"github.com/cwbudde/algo-vforce/internal/cpu"
	"github.com/cwbudde/algo-vforce/internal/native"
	"github.com/cwbudde/algo-vforce/internal/native/registry"
)

// Name is the registry name of the Accelerate backend.
const Name = "accelerate"

// init registers the vForce routines with the backend registry.
//
// Priority: 20 (preferred over the generic kernels whenever linked)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:     Name,
		Level:    cpu.LevelAccelerate,
		Priority: 20,
		Float32:  newTable32(),
		Float64:  newTable64(),
	})
}

var unary32 = [native.NumUnaryOps]C.vf_unary_f{
	native.OpCeil:  C.vf_unary_f(C.vvceilf),
	native.OpFloor: C.vf_unary_f(C.vvfloorf),
	native.OpFabs:  C.vf_unary_f(C.vvfabsf),
	native.OpInt:   C.vf_unary_f(C.vvintf),
	native.OpNint:  C.vf_unary_f(C.vvnintf),
	native.OpRsqrt: C.vf_unary_f(C.vvrsqrtf),
	native.OpSqrt:  C.vf_unary_f(C.vvsqrtf),
	native.OpRec:   C.vf_unary_f(C.vvrecf),
	native.OpExp:   C.vf_unary_f(C.vvexpf),
	native.OpExp2:  C.vf_unary_f(C.vvexp2f),
	native.OpExpm1: C.vf_unary_f(C.vvexpm1f),
	native.OpLog:   C.vf_unary_f(C.vvlogf),
	native.OpLog1p: C.vf_unary_f(C.vvlog1pf),
	native.OpLog2:  C.vf_unary_f(C.vvlog2f),
	native.OpLog10: C.vf_unary_f(C.vvlog10f),
	native.OpLogb:  C.vf_unary_f(C.vvlogbf),
	native.OpSin:   C.vf_unary_f(C.vvsinf),
	native.OpSinpi: C.vf_unary_f(C.vvsinpif),
	native.OpCos:   C.vf_unary_f(C.vvcosf),
	native.OpCospi: C.vf_unary_f(C.vvcospif),
	native.OpTan:   C.vf_unary_f(C.vvtanf),
	native.OpTanpi: C.vf_unary_f(C.vvtanpif),
	native.OpAsin:  C.vf_unary_f(C.vvasinf),
	native.OpAcos:  C.vf_unary_f(C.vvacosf),
	native.OpAtan:  C.vf_unary_f(C.vvatanf),
	native.OpSinh:  C.vf_unary_f(C.vvsinhf),
	native.OpCosh:  C.vf_unary_f(C.vvcoshf),
	native.OpTanh:  C.vf_unary_f(C.vvtanhf),
	native.OpAsinh: C.vf_unary_f(C.vvasinhf),
	native.OpAcosh: C.vf_unary_f(C.vvacoshf),
	native.OpAtanh: C.vf_unary_f(C.vvatanhf),
}

var unary64 = [native.NumUnaryOps]C.vf_unary_d{
	native.OpCeil:  C.vf_unary_d(C.vvceil),
	native.OpFloor: C.vf_unary_d(C.vvfloor),
	native.OpFabs:  C.vf_unary_d(C.vvfabs),
	native.OpInt:   C.vf_unary_d(C.vvint),
	native.OpNint:  C.vf_unary_d(C.vvnint),
	native.OpRsqrt: C.vf_unary_d(C.vvrsqrt),
	native.OpSqrt:  C.vf_unary_d(C.vvsqrt),
	native.OpRec:   C.vf_unary_d(C.vvrec),
	native.OpExp:   C.vf_unary_d(C.vvexp),
	native.OpExp2:  C.vf_unary_d(C.vvexp2),
	native.OpExpm1: C.vf_unary_d(C.vvexpm1),
	native.OpLog:   C.vf_unary_d(C.vvlog),
	native.OpLog1p: C.vf_unary_d(C.vvlog1p),
	native.OpLog2:  C.vf_unary_d(C.vvlog2),
	native.OpLog10: C.vf_unary_d(C.vvlog10),
	native.OpLogb:  C.vf_unary_d(C.vvlogb),
	native.OpSin:   C.vf_unary_d(C.vvsin),
	native.OpSinpi: C.vf_unary_d(C.vvsinpi),
	native.OpCos:   C.vf_unary_d(C.vvcos),
	native.OpCospi: C.vf_unary_d(C.vvcospi),
	native.OpTan:   C.vf_unary_d(C.vvtan),
	native.OpTanpi: C.vf_unary_d(C.vvtanpi),
	native.OpAsin:  C.vf_unary_d(C.vvasin),
	native.OpAcos:  C.vf_unary_d(C.vvacos),
	native.OpAtan:  C.vf_unary_d(C.vvatan),
	native.OpSinh:  C.vf_unary_d(C.vvsinh),
	native.OpCosh:  C.vf_unary_d(C.vvcosh),
	native.OpTanh:  C.vf_unary_d(C.vvtanh),
	native.OpAsinh: C.vf_unary_d(C.vvasinh),
	native.OpAcosh: C.vf_unary_d(C.vvacosh),
	native.OpAtanh: C.vf_unary_d(C.vvatanh),
}

var binary32 = [native.NumBinaryOps]C.vf_binary_f{
	native.OpPow:       C.vf_binary_f(C.vvpowf),
	native.OpDiv:       C.vf_binary_f(C.vvdivf),
	native.OpCopysign:  C.vf_binary_f(C.vvcopysignf),
	native.OpFmod:      C.vf_binary_f(C.vvfmodf),
	native.OpRemainder: C.vf_binary_f(C.vvremainderf),
	native.OpNextafter: C.vf_binary_f(C.vvnextafterf),
	native.OpAtan2:     C.vf_binary_f(C.vvatan2f),
}

var binary64 = [native.NumBinaryOps]C.vf_binary_d{
	native.OpPow:       C.vf_binary_d(C.vvpow),
	native.OpDiv:       C.vf_binary_d(C.vvdiv),
	native.OpCopysign:  C.vf_binary_d(C.vvcopysign),
	native.OpFmod:      C.vf_binary_d(C.vvfmod),
	native.OpRemainder: C.vf_binary_d(C.vvremainder),
	native.OpNextafter: C.vf_binary_d(C.vvnextafter),
	native.OpAtan2:     C.vf_binary_d(C.vvatan2),
}

func newTable32() *native.Table[float32] {
	t := &native.Table[float32]{}
	for op, fn := range unary32 {
		t.Unary[op] = unaryFloat32(fn)
	}
	for op, fn := range binary32 {
		t.Binary[op] = binaryFloat32(fn)
	}
	// vvpowf takes the exponents before the bases.
	t.Binary[native.OpPow] = swapOperands(t.Binary[native.OpPow])
	t.SinCos = sinCosFloat32
	t.CosISin = cosISinFloat32
	return t
}

func newTable64() *native.Table[float64] {
	t := &native.Table[float64]{}
	for op, fn := range unary64 {
		t.Unary[op] = unaryFloat64(fn)
	}
	for op, fn := range binary64 {
		t.Binary[op] = binaryFloat64(fn)
	}
	// vvpow takes the exponents before the bases.
	t.Binary[native.OpPow] = swapOperands(t.Binary[native.OpPow])
	t.SinCos = sinCosFloat64
	t.CosISin = cosISinFloat64
	return t
}

func swapOperands[F native.Float](f native.BinaryFunc[F]) native.BinaryFunc[F] {
	return func(out, a, b *F, n int32) {
		f(out, b, a, n)
	}
}

func unaryFloat32(fn C.vf_unary_f) native.UnaryFunc[float32] {
	return func(out, x *float32, n int32) {
		C.vf_call_unary_f(fn, cFloat(out), cFloat(x), C.int(n))
	}
}

func unaryFloat64(fn C.vf_unary_d) native.UnaryFunc[float64] {
	return func(out, x *float64, n int32) {
		C.vf_call_unary_d(fn, cDouble(out), cDouble(x), C.int(n))
	}
}

func binaryFloat32(fn C.vf_binary_f) native.BinaryFunc[float32] {
	return func(out, a, b *float32, n int32) {
		C.vf_call_binary_f(fn, cFloat(out), cFloat(a), cFloat(b), C.int(n))
	}
}

func binaryFloat64(fn C.vf_binary_d) native.BinaryFunc[float64] {
	return func(out, a, b *float64, n int32) {
		C.vf_call_binary_d(fn, cDouble(out), cDouble(a), cDouble(b), C.int(n))
	}
}

func sinCosFloat32(sinOut, cosOut, x *float32, n int32) {
	C.vf_sincos_f(cFloat(sinOut), cFloat(cosOut), cFloat(x), C.int(n))
}

func sinCosFloat64(sinOut, cosOut, x *float64, n int32) {
	C.vf_sincos_d(cDouble(sinOut), cDouble(cosOut), cDouble(x), C.int(n))
}

func cosISinFloat32(out, x *float32, n int32) {
	C.vf_cosisin_f(cFloat(out), cFloat(x), C.int(n))
}

func cosISinFloat64(out, x *float64, n int32) {
	C.vf_cosisin_d(cDouble(out), cDouble(x), C.int(n))
}

func cFloat(p *float32) *C.float { return (*C.float)(unsafe.Pointer(p)) }

func cDouble(p *float64) *C.double { return (*C.double)(unsafe.Pointer(p)) }
