package vforce

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/cwbudde/algo-vforce/internal/cpu"
	"github.com/cwbudde/algo-vforce/internal/native/arch/generic"
	"github.com/cwbudde/algo-vforce/internal/native/registry"
)

// BackendInfo describes a registered backend.
type BackendInfo struct {
	Name      string
	Level     string
	Priority  int
	Supported bool // usable on this platform with the current features
	Complete  bool // provides every routine in both precisions
	Selected  bool // currently serving calls
}

var active atomic.Pointer[registry.OpEntry]

// current returns the backend serving calls, selecting one on first use.
func current() *registry.OpEntry {
	if entry := active.Load(); entry != nil {
		return entry
	}
	entry := selectDefault()
	if active.CompareAndSwap(nil, entry) {
		logger().Debug().
			Str("backend", entry.Name).
			Str("level", entry.Level.String()).
			Msg("vforce: backend selected")
	}
	return active.Load()
}

func selectDefault() *registry.OpEntry {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)
	if entry != nil {
		if missing := entry.Missing(); len(missing) > 0 {
			logger().Warn().
				Str("backend", entry.Name).
				Strs("missing", missing).
				Msg("vforce: incomplete backend, falling back to generic")
			entry = nil
		}
	}
	if entry == nil {
		entry = registry.Global.LookupName(generic.Name)
	}
	selected := *entry
	return &selected
}

// Backend returns the name of the backend serving calls.
func Backend() string {
	return current().Name
}

// Backends lists the registered backends in order of preference.
func Backends() []BackendInfo {
	features := cpu.DetectFeatures()
	selected := current().Name

	entries := registry.Global.ListEntries()
	infos := make([]BackendInfo, 0, len(entries))
	for i := range entries {
		e := &entries[i]
		infos = append(infos, BackendInfo{
			Name:      e.Name,
			Level:     e.Level.String(),
			Priority:  e.Priority,
			Supported: cpu.Supports(features, e.Level),
			Complete:  len(e.Missing()) == 0,
			Selected:  e.Name == selected,
		})
	}
	return infos
}

// UseBackend makes the named backend serve all subsequent calls.
//
// It fails with ErrUnknownBackend if no backend registered under name, and
// with ErrUnsupportedBackend if the backend cannot run on this platform or
// does not provide every routine.
func UseBackend(name string) error {
	entry := registry.Global.LookupName(name)
	if entry == nil {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	if !cpu.Supports(cpu.DetectFeatures(), entry.Level) {
		return fmt.Errorf("%w: %q requires %s", ErrUnsupportedBackend, name, entry.Level)
	}
	if missing := entry.Missing(); len(missing) > 0 {
		return fmt.Errorf("%w: %q lacks %s", ErrUnsupportedBackend, name, strings.Join(missing, ", "))
	}

	selected := *entry
	active.Store(&selected)
	logger().Debug().Str("backend", name).Msg("vforce: backend forced")
	return nil
}

// ResetBackend discards the current selection. The next call selects the
// preferred backend for the detected platform features again.
func ResetBackend() {
	active.Store(nil)
}
