// Package nativetest provides a recording backend for tests that need to
// observe which native routines run, in which order, and with which counts.
package nativetest

import (
	"sync"

	"github.com/cwbudde/algo-vforce/internal/cpu"
	"github.com/cwbudde/algo-vforce/internal/native"
	"github.com/cwbudde/algo-vforce/internal/native/registry"
)

// Call is one observed kernel invocation.
type Call struct {
	Op        string // routine name, e.g. "sin" or "sincos"
	Precision int    // 32 or 64
	N         int32  // element count passed to the kernel
}

// Recorder forwards every kernel to a base backend and logs the calls.
// It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

// Entry returns a registry entry named name whose kernels record into r and
// then run the corresponding kernels of base. The entry requires no platform
// capability and has a negative priority, so automatic selection never
// prefers it over a real backend.
func (r *Recorder) Entry(name string, base registry.OpEntry) registry.OpEntry {
	return registry.OpEntry{
		Name:     name,
		Level:    cpu.LevelGeneric,
		Priority: -10,
		Float32:  wrapTable(r, 32, base.Float32),
		Float64:  wrapTable(r, 64, base.Float64),
	}
}

// Calls returns a copy of the calls recorded so far.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()

	calls := make([]Call, len(r.calls))
	copy(calls, r.calls)
	return calls
}

// Counts returns the element count of every recorded call, in order.
func (r *Recorder) Counts() []int32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make([]int32, len(r.calls))
	for i, c := range r.calls {
		counts[i] = c.N
	}
	return counts
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

func (r *Recorder) record(op string, precision int, n int32) {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Op: op, Precision: precision, N: n})
	r.mu.Unlock()
}

func wrapTable[F native.Float](r *Recorder, precision int, base *native.Table[F]) *native.Table[F] {
	if base == nil {
		return nil
	}
	t := &native.Table[F]{}

	for op, fn := range base.Unary {
		if fn == nil {
			continue
		}
		name := native.UnaryOp(op).String()
		t.Unary[op] = func(out, x *F, n int32) {
			r.record(name, precision, n)
			fn(out, x, n)
		}
	}
	for op, fn := range base.Binary {
		if fn == nil {
			continue
		}
		name := native.BinaryOp(op).String()
		t.Binary[op] = func(out, a, b *F, n int32) {
			r.record(name, precision, n)
			fn(out, a, b, n)
		}
	}
	if fn := base.SinCos; fn != nil {
		t.SinCos = func(sinOut, cosOut, x *F, n int32) {
			r.record(native.SinCosName, precision, n)
			fn(sinOut, cosOut, x, n)
		}
	}
	if fn := base.CosISin; fn != nil {
		t.CosISin = func(out, x *F, n int32) {
			r.record(native.CosISinName, precision, n)
			fn(out, x, n)
		}
	}
	return t
}
