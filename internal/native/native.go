// Package native defines the call contract between the vforce wrappers and the
// vector math backends.
//
// Every kernel mirrors the vendor C ABI: raw element pointers followed by an
// element count that fits a signed 32-bit integer. Kernels perform no checks of
// any kind. A kernel may only be called with pointers to at least n valid
// elements each; in-place callers pass the same pointer as output and input.
// The vforce package is the only caller, and only after validation.
package native

// Float is the closed set of element types the backends provide routines for.
type Float interface {
	float32 | float64
}

// UnaryFunc computes out[i] = f(x[i]) for i in [0, n).
type UnaryFunc[F Float] func(out, x *F, n int32)

// BinaryFunc computes out[i] = f(a[i], b[i]) for i in [0, n).
type BinaryFunc[F Float] func(out, a, b *F, n int32)

// SinCosFunc computes sinOut[i] = sin(x[i]) and cosOut[i] = cos(x[i]).
// Either output may alias x.
type SinCosFunc[F Float] func(sinOut, cosOut, x *F, n int32)

// CosISinFunc writes 2n values to out: cos(x[i]) at 2i and sin(x[i]) at 2i+1.
type CosISinFunc[F Float] func(out, x *F, n int32)

// Table holds one precision's entry points for every routine.
type Table[F Float] struct {
	Unary   [NumUnaryOps]UnaryFunc[F]
	Binary  [NumBinaryOps]BinaryFunc[F]
	SinCos  SinCosFunc[F]
	CosISin CosISinFunc[F]
}

// Missing returns the names of the routines the table does not provide.
func (t *Table[F]) Missing() []string {
	if t == nil {
		return []string{"<nil table>"}
	}
	var missing []string
	for op, fn := range t.Unary {
		if fn == nil {
			missing = append(missing, UnaryOp(op).String())
		}
	}
	for op, fn := range t.Binary {
		if fn == nil {
			missing = append(missing, BinaryOp(op).String())
		}
	}
	if t.SinCos == nil {
		missing = append(missing, SinCosName)
	}
	if t.CosISin == nil {
		missing = append(missing, CosISinName)
	}
	return missing
}
