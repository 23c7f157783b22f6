// Package registry provides the backend registry for vforce routines.
//
// The registry-based dispatch system allows multiple backends (the pure Go
// reference kernels, Apple Accelerate, test recorders) to coexist. The best
// backend for the current platform is selected at runtime.
//
// Backends register themselves via init() functions, and the vforce package
// uses the registry to select one based on detected platform features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vforce/internal/cpu"
	"github.com/cwbudde/algo-vforce/internal/native"
)

// OpEntry represents a registered backend.
//
// Each entry carries one dispatch table per supported precision. A usable
// entry provides every routine in both tables.
type OpEntry struct {
	// Name is a human-readable identifier for this backend (e.g., "generic", "accelerate").
	Name string

	// Level indicates the platform capability the backend requires.
	Level cpu.Level

	// Priority determines selection order when multiple compatible backends exist.
	// Higher priority backends are preferred. Suggested priorities:
	//   - Generic (LevelGeneric): 0
	//   - Accelerate: 20
	Priority int

	// Float32 holds the single-precision entry points.
	Float32 *native.Table[float32]

	// Float64 holds the double-precision entry points.
	Float64 *native.Table[float64]
}

// Missing returns the routines absent from either table, prefixed by precision.
func (e *OpEntry) Missing() []string {
	var missing []string
	for _, name := range e.Float32.Missing() {
		missing = append(missing, "float32 "+name)
	}
	for _, name := range e.Float64.Missing() {
		missing = append(missing, "float64 "+name)
	}
	return missing
}

// OpRegistry manages the registration and lookup of backends.
//
// Backends register themselves via init() functions. At runtime, Lookup()
// selects the highest-priority backend compatible with the platform.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by all vforce operations.
var Global = &OpRegistry{}

// Register adds a backend to the registry.
//
// This function is typically called from init() functions in backend packages.
// It is safe to call concurrently, but all registrations should complete
// before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best backend for the given platform features.
//
// Returns the highest-priority entry compatible with the platform. If no
// compatible backend is found, returns nil (which should never happen if the
// generic backend is registered).
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.Level) {
			return entry
		}
	}

	return nil
}

// LookupName returns the highest-priority backend registered under name,
// regardless of platform support, or nil.
func (r *OpRegistry) LookupName(name string) *OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}
	return nil
}

func (r *OpRegistry) ensureSorted() {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Simple insertion sort (registry is small, 2-3 entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, sorted by priority.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.ensureSorted()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
