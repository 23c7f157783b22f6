package vforce

// Complex is a pair of same-precision values laid out as two adjacent F,
// real part first. CosISin fills it with (cos, sin).
type Complex[F Float] struct {
	real F
	imag F
}

// Unpack returns the real and imaginary parts.
func (c Complex[F]) Unpack() (re, im F) {
	return c.real, c.imag
}
