package cpu

import "testing"

func TestSupports(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		level    Level
		want     bool
	}{
		{"generic always", Features{}, LevelGeneric, true},
		{"accelerate missing", Features{}, LevelAccelerate, false},
		{"accelerate linked", Features{HasAccelerate: true}, LevelAccelerate, true},
		{"forced generic", Features{HasAccelerate: true, ForceGeneric: true}, LevelAccelerate, false},
		{"forced generic keeps generic", Features{ForceGeneric: true}, LevelGeneric, true},
		{"unknown level", Features{HasAccelerate: true}, Level(99), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Supports(tt.features, tt.level); got != tt.want {
				t.Errorf("Supports(%+v, %v) = %v, want %v", tt.features, tt.level, got, tt.want)
			}
		})
	}
}

func TestForcedFeatures(t *testing.T) {
	SetForcedFeatures(Features{HasAccelerate: true, Architecture: "arm64"})
	defer ResetDetection()

	f := DetectFeatures()
	if !f.HasAccelerate || f.Architecture != "arm64" {
		t.Fatalf("forced features not returned: %+v", f)
	}
	if !HasAccelerate() {
		t.Fatal("HasAccelerate() = false with forced accelerate")
	}
}

func TestNoNativeEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"0", false},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			t.Setenv(NoNativeEnv, tt.value)
			ResetDetection()
			defer ResetDetection()

			if got := DetectFeatures().ForceGeneric; got != tt.want {
				t.Errorf("ForceGeneric with %s=%q = %v, want %v", NoNativeEnv, tt.value, got, tt.want)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	if LevelGeneric.String() != "Generic" || LevelAccelerate.String() != "Accelerate" {
		t.Fatalf("unexpected level names %q %q", LevelGeneric, LevelAccelerate)
	}
	if Level(42).String() != "Unknown" {
		t.Fatalf("unexpected name for unknown level: %q", Level(42))
	}
}

func TestFeaturesSIMD(t *testing.T) {
	tests := []struct {
		name     string
		features Features
		want     string
	}{
		{"none", Features{HasAccelerate: true}, "none"},
		{"x86", Features{HasSSE2: true, HasAVX: true, HasAVX2: true}, "sse2,avx,avx2"},
		{"avx512", Features{HasSSE2: true, HasAVX512: true}, "sse2,avx512"},
		{"arm", Features{HasNEON: true}, "neon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.features.SIMD(); got != tt.want {
				t.Errorf("SIMD() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectFeaturesSIMD(t *testing.T) {
	ResetDetection()
	defer ResetDetection()

	f := DetectFeatures()
	switch f.Architecture {
	case "amd64":
		// SSE2 is part of the amd64 baseline.
		if !f.HasSSE2 {
			t.Errorf("amd64 without SSE2: %+v", f)
		}
	case "arm64":
		if !f.HasNEON {
			t.Errorf("arm64 without NEON: %+v", f)
		}
	default:
		if f.SIMD() != "none" {
			t.Errorf("SIMD() = %q on %s", f.SIMD(), f.Architecture)
		}
	}
}
