package vforce

import "github.com/cwbudde/algo-vforce/internal/native"

// table resolves the active backend's entry points for the precision of F.
func table[F Float]() *native.Table[F] {
	entry := current()
	var zero F
	if _, ok := any(zero).(float32); ok {
		return any(entry.Float32).(*native.Table[F])
	}
	return any(entry.Float64).(*native.Table[F])
}

func unaryOp[F Float](op native.UnaryOp, out, x []F) error {
	n, err := validateLengths1(len(x), len(out), "out")
	if err != nil {
		return err
	}
	kernel := table[F]().Unary[op]
	return forEachWindow(n, func(lo int, count int32) {
		kernel(&out[lo], &x[lo], count)
	})
}

func unaryInPlace[F Float](op native.UnaryOp, x []F) error {
	kernel := table[F]().Unary[op]
	return forEachWindow(len(x), func(lo int, count int32) {
		kernel(&x[lo], &x[lo], count)
	})
}

// binaryOp validates a against bName and out, then computes out = op(a, b).
func binaryOp[F Float](op native.BinaryOp, out, a, b []F, bName string) error {
	n, err := validateLengths2(len(a), len(b), len(out), bName, "out")
	if err != nil {
		return err
	}
	kernel := table[F]().Binary[op]
	return forEachWindow(n, func(lo int, count int32) {
		kernel(&out[lo], &a[lo], &b[lo], count)
	})
}

// binaryInPlace computes a = op(a, b).
func binaryInPlace[F Float](op native.BinaryOp, a, b []F, bName string) error {
	n, err := validateLengths1(len(a), len(b), bName)
	if err != nil {
		return err
	}
	kernel := table[F]().Binary[op]
	return forEachWindow(n, func(lo int, count int32) {
		kernel(&a[lo], &a[lo], &b[lo], count)
	})
}
