package generic

import (
	"github.com/cwbudde/algo-vforce/internal/cpu"
	"github.com/cwbudde/algo-vforce/internal/native/registry"
)

// Name is the registry name of the pure Go backend.
const Name = "generic"

// init registers the pure Go kernels with the backend registry.
//
// The generic backend is the baseline fallback when no vendor library is
// linked or when ForceGeneric is enabled for testing.
//
// Priority: 0 (lowest - used only when no native alternative is available)
func init() {
	registry.Global.Register(Entry())
}

// Entry returns the registry entry of the generic backend.
func Entry() registry.OpEntry {
	return registry.OpEntry{
		Name:     Name,
		Level:    cpu.LevelGeneric,
		Priority: 0,
		Float32:  float32Table,
		Float64:  float64Table,
	}
}
