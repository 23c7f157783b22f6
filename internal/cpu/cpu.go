// Package cpu provides platform capability detection for vector math backend selection.
//
// It reports the SIMD extensions of the current processor and whether a vendor
// vector math library is linked into the binary, caching the results for
// efficient querying.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
package cpu

import (
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
)

// NoNativeEnv is the environment variable that disables every native backend.
// When set to a true value, only the pure Go reference kernels are selected.
const NoNativeEnv = "VFORCE_NO_NATIVE"

// Level represents the kind of kernel implementation a backend requires.
type Level int

const (
	// LevelGeneric indicates pure Go kernels, available everywhere.
	LevelGeneric Level = iota

	// LevelAccelerate indicates Apple Accelerate vForce routines (darwin, cgo).
	LevelAccelerate
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelGeneric:
		return "Generic"
	case LevelAccelerate:
		return "Accelerate"
	default:
		return "Unknown"
	}
}

// Features describes platform capabilities relevant to backend selection.
type Features struct {
	// Vendor libraries
	HasAccelerate bool // Apple Accelerate is linked (darwin, cgo, not purego)

	// x86/amd64 SIMD features
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool

	// ARM SIMD features
	HasNEON bool

	// Control flags
	ForceGeneric bool // Disable all native backends (for testing/debugging)

	// Runtime information
	Architecture string // runtime.GOARCH
	OS           string // runtime.GOOS
}

// SIMD returns the detected SIMD extensions as a comma-separated list,
// or "none".
func (f Features) SIMD() string {
	flags := []struct {
		name string
		has  bool
	}{
		{"sse2", f.HasSSE2},
		{"avx", f.HasAVX},
		{"avx2", f.HasAVX2},
		{"avx512", f.HasAVX512},
		{"neon", f.HasNEON},
	}
	var names []string
	for _, fl := range flags {
		if fl.has {
			names = append(names, fl.name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

var (
	// detectedFeatures holds the cached features detected on this system.
	detectedFeatures Features

	// detectOnce ensures detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the capabilities of the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is thread-safe and can be called concurrently from multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
		detectedFeatures.HasAccelerate = accelerateLinked
		detectedFeatures.OS = runtime.GOOS
		detectedFeatures.ForceGeneric = noNative()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasAccelerate returns true if the Accelerate backend is linked and usable.
func HasAccelerate() bool {
	f := DetectFeatures()
	return f.HasAccelerate && !f.ForceGeneric
}

// SetForcedFeatures overrides detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given features support the specified level.
// The backend registry uses it to determine implementation compatibility.
func Supports(features Features, level Level) bool {
	if features.ForceGeneric {
		return level == LevelGeneric
	}

	switch level {
	case LevelGeneric:
		return true
	case LevelAccelerate:
		return features.HasAccelerate
	default:
		return false
	}
}

// noNative reports whether NoNativeEnv is set.
// Any non-empty value counts, unless it parses as a false boolean.
func noNative() bool {
	val := os.Getenv(NoNativeEnv)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
