package vforce

import "math"

// maxChunk bounds the element count of a single native call.
var maxChunk = math.MaxInt32

// windowSize returns the length of the windows n elements are split into.
// It fails when the window cannot be expressed as a native int32 count.
func windowSize(n int) (int, error) {
	size := min(n, maxChunk)
	if size <= 0 || int64(size) > math.MaxInt32 {
		return 0, ErrOverflow
	}
	return size, nil
}

// forEachWindow calls fn for consecutive windows [lo, hi) covering [0, n),
// in order. The window size is checked before the first call, so fn never
// runs when an error is returned. n == 0 issues no call.
func forEachWindow(n int, fn func(lo int, count int32)) error {
	if n == 0 {
		return nil
	}
	size, err := windowSize(n)
	if err != nil {
		return err
	}
	if n > size {
		logger().Debug().
			Int("elements", n).
			Int("window", size).
			Int("windows", (n+size-1)/size).
			Msg("vforce: chunked call")
	}
	for lo := 0; lo < n; {
		count := min(size, n-lo)
		fn(lo, int32(count))
		lo += count
	}
	return nil
}
