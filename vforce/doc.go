// Package vforce provides validated, slice-based access to vectorized
// elementary functions (Apple Accelerate vForce, or a pure Go substitute).
//
// Every operation comes as a pair: one form writes to a separate output slice
// and one overwrites its first argument in place. All operations are generic
// over Float, which admits exactly float32 and float64.
//
//	out := make([]float64, len(x))
//	if err := vforce.Sin(out, x); err != nil {
//		return err
//	}
//
// Slice lengths are checked before any native routine runs. A returned error
// means no element was written. Slices longer than the native 32-bit element
// count are processed in consecutive windows.
//
// # Backends
//
// On darwin with cgo the Accelerate framework is linked and preferred. The
// pure Go backend is always available; set VFORCE_NO_NATIVE=1 or call
// UseBackend("generic") to force it.
//
// # Concurrency
//
// The package holds no per-call state. Calls on disjoint slices may run
// concurrently. Callers synchronize access to slices they share between
// goroutines.
package vforce
