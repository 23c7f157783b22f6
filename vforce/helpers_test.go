package vforce

import (
	"math"
	"sync"
	"testing"

	"github.com/cwbudde/algo-vforce/internal/native/arch/generic"
	"github.com/cwbudde/algo-vforce/internal/native/nativetest"
	"github.com/cwbudde/algo-vforce/internal/native/registry"
)

const recorderName = "recorder"

var (
	recorder     nativetest.Recorder
	registerOnce sync.Once
)

// useRecorder routes all calls of the test through a recording backend that
// forwards to the generic kernels.
func useRecorder(t *testing.T) *nativetest.Recorder {
	t.Helper()
	registerOnce.Do(func() {
		registry.Global.Register(recorder.Entry(recorderName, generic.Entry()))
	})
	if err := UseBackend(recorderName); err != nil {
		t.Fatalf("UseBackend(%q): %v", recorderName, err)
	}
	recorder.Reset()
	t.Cleanup(func() {
		ResetBackend()
		recorder.Reset()
	})
	return &recorder
}

// withMaxChunk lowers the native window bound for the duration of the test.
func withMaxChunk(t *testing.T, n int) {
	t.Helper()
	saved := maxChunk
	maxChunk = n
	t.Cleanup(func() { maxChunk = saved })
}

// nearly compares with an absolute tolerance below 1 and a relative one above.
func nearly(got, want, eps float64) bool {
	if math.IsNaN(got) || math.IsNaN(want) {
		return math.IsNaN(got) && math.IsNaN(want)
	}
	if got == want {
		return true
	}
	return math.Abs(got-want) <= eps*math.Max(1, math.Abs(want))
}

func requireNearly[F Float](t *testing.T, name string, got []F, x []float64, ref func(float64) float64, eps float64) {
	t.Helper()
	for i := range got {
		want := ref(x[i])
		if !nearly(float64(got[i]), want, eps) {
			t.Fatalf("%s(%v) = %v, want %v", name, x[i], got[i], want)
		}
	}
}
