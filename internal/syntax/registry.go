package syntax

import (
	"path/filepath"
	"strings"
	"sync"
)

// registry holds all registered modes. Modes register themselves from
// package init functions; after process startup the registry is read-only,
// so lookups need no synchronization beyond the registration mutex.
var registry = struct {
	mu      sync.Mutex
	byName  map[string]*Mode
	byExt   map[string]*Mode
	ordered []*Mode
}{
	byName: make(map[string]*Mode),
	byExt:  make(map[string]*Mode),
}

// Register adds a mode to the process-wide registry. Registering the same
// mode name twice is a programming error and panics; there is no
// unregistration path.
func Register(m *Mode) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	if _, dup := registry.byName[m.Name]; dup {
		panic("syntax: duplicate mode registration: " + m.Name)
	}
	registry.byName[m.Name] = m
	registry.ordered = append(registry.ordered, m)
	for _, ext := range m.Extensions {
		registry.byExt[strings.ToLower(ext)] = m
	}
}

// ForPath returns the mode claiming the file's extension, or nil when no
// mode matches.
func ForPath(path string) *Mode {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return nil
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	return registry.byExt[ext]
}

// ByName returns the mode with the given display name, or nil.
func ByName(name string) *Mode {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	return registry.byName[name]
}

// Modes returns all registered modes in registration order.
func Modes() []*Mode {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	out := make([]*Mode, len(registry.ordered))
	copy(out, registry.ordered)
	return out
}
