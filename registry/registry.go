package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lixenwraith/modpack/mod"
)

var (
	ErrDuplicate  = errors.New("mod already registered")
	ErrNilFactory = errors.New("nil factory")
	ErrEmptyName  = errors.New("empty mod name")
)

// Factory constructs one mod instance
type Factory func() (mod.Mod, error)

// Entry is a registered type with its capability tags
type Entry struct {
	Name    string
	Caps    Capability
	Factory Factory
}

// Registry holds mod entries in registration order
// Registration is expected at program start; discovery is read-only
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	index   map[string]int
}

// New creates an empty registry
func New() *Registry {
	return &Registry{
		index: make(map[string]int),
	}
}

// Register adds an entry; names are unique
func (r *Registry) Register(e Entry) error {
	if e.Name == "" {
		return ErrEmptyName
	}
	if e.Factory == nil {
		return fmt.Errorf("mod %s: %w", e.Name, ErrNilFactory)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[e.Name]; exists {
		return fmt.Errorf("mod %s: %w", e.Name, ErrDuplicate)
	}
	r.index[e.Name] = len(r.entries)
	r.entries = append(r.entries, e)
	return nil
}

// MustRegister panics on registration error
func (r *Registry) MustRegister(e Entry) {
	if err := r.Register(e); err != nil {
		panic(err)
	}
}

// Get retrieves an entry by name
func (r *Registry) Get(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[name]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Names returns all registered names in registration order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		names = append(names, e.Name)
	}
	return names
}

// Len returns the number of registered entries
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

var defaultRegistry = New()

// Default returns the process-wide registry populated by the manifest
func Default() *Registry {
	return defaultRegistry
}

// Register adds an entry to the default registry
func Register(e Entry) error {
	return defaultRegistry.Register(e)
}
