package vforce

import "unsafe"

// SinCos computes the sine and cosine of each element of x in one pass.
func SinCos[F Float](sinOut, cosOut, x []F) error {
	n, err := validateLengths2(len(x), len(sinOut), len(cosOut), "sinOut", "cosOut")
	if err != nil {
		return err
	}
	kernel := table[F]().SinCos
	return forEachWindow(n, func(lo int, count int32) {
		kernel(&sinOut[lo], &cosOut[lo], &x[lo], count)
	})
}

// SinCosInPlaceSin overwrites x with sin(x) and writes cos(x) to cosOut.
func SinCosInPlaceSin[F Float](x, cosOut []F) error {
	n, err := validateLengths1(len(x), len(cosOut), "cosOut")
	if err != nil {
		return err
	}
	kernel := table[F]().SinCos
	return forEachWindow(n, func(lo int, count int32) {
		kernel(&x[lo], &cosOut[lo], &x[lo], count)
	})
}

// SinCosInPlaceCos overwrites x with cos(x) and writes sin(x) to sinOut.
func SinCosInPlaceCos[F Float](x, sinOut []F) error {
	n, err := validateLengths1(len(x), len(sinOut), "sinOut")
	if err != nil {
		return err
	}
	kernel := table[F]().SinCos
	return forEachWindow(n, func(lo int, count int32) {
		kernel(&sinOut[lo], &x[lo], &x[lo], count)
	})
}

// CosISin computes the point on the unit circle at angle x[i]:
// out[i] = cos(x[i]) + i*sin(x[i]). The length of out is authoritative.
//
// There is no in-place form; out occupies twice the memory of x.
func CosISin[F Float](out []Complex[F], x []F) error {
	n, err := validateLengths1(len(out), len(x), "x")
	if err != nil {
		return err
	}
	kernel := table[F]().CosISin
	return forEachWindow(n, func(lo int, count int32) {
		kernel((*F)(unsafe.Pointer(&out[lo])), &x[lo], count)
	})
}
