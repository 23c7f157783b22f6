package vforce

// validateLengths1 checks a buffer against the authoritative length a and
// returns the element count.
func validateLengths1(a, b int, bName string) (int, error) {
	if b != a {
		return 0, &LengthMismatchError{Buffer: bName, Expected: a, Got: b}
	}
	return a, nil
}

// validateLengths2 checks two buffers against the authoritative length a.
// Both are checked before the count is returned.
func validateLengths2(a, b, c int, bName, cName string) (int, error) {
	if b != a {
		return 0, &LengthMismatchError{Buffer: bName, Expected: a, Got: b}
	}
	if c != a {
		return 0, &LengthMismatchError{Buffer: cName, Expected: a, Got: c}
	}
	return a, nil
}
