package hashers

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/brettbedarf/dedupe"
)

var (
	ErrUnknownHasher = errors.New("unknown hasher")
	ErrHasherFailed  = errors.New("hasher failed")
)

// Factory builds a ready to use hasher instance.
type Factory func() (dedupe.Hasher, error)

// Registry maps hasher names to factories. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register ties a factory to a hasher name. Registering an existing name replaces it.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	r.factories[name] = factory
	r.mu.Unlock()
}

// New builds the hasher registered under name.
func (r *Registry) New(name string) (dedupe.Hasher, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownHasher, name, strings.Join(r.Names(), ", "))
	}
	return f()
}

// Names returns the registered hasher names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultRegistry backs the package level helpers used by the CLI.
var defaultRegistry = NewRegistry()

// Register adds a factory to the default registry and should be called for
// each hasher type during app init
func Register(name string, factory Factory) {
	defaultRegistry.Register(name, factory)
}

// New builds a hasher from the default registry.
// All expected hasher names should be registered with [Register]
// (or [RegisterBuiltins]) before calling this function.
func New(name string) (dedupe.Hasher, error) {
	return defaultRegistry.New(name)
}

// Names lists the default registry.
func Names() []string {
	return defaultRegistry.Names()
}
