// Package translator manages translator registration and
// instantiation. A translator wraps a raw vendor device behind the
// opent2t data model so the accessor can dispatch against it: the
// created handle is a thing.View, or implements
// thing.InterfaceProvider when it serves several interfaces.
package translator

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Registry errors.
var (
	ErrNotRegistered     = errors.New("translator not registered")
	ErrAlreadyRegistered = errors.New("translator already registered")
	ErrNilFactory        = errors.New("translator factory is nil")
)

// Factory creates a device handle from onboarding properties. The
// returned handle is what callers pass to the access package.
type Factory func(props map[string]any) (any, error)

// Instance is one created translator: a device handle tagged with the
// translator package that produced it and a unique instance ID.
type Instance struct {
	// ID uniquely identifies this instance (UUID).
	ID string

	// Package is the translator package name the instance came from.
	Package string

	// Device is the handle to dispatch against.
	Device any
}

// Registry maps translator package names to factories. Safe for
// concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty translator registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a translator factory under the given package name
// (e.g. "opent2t-translator-com-sample-lamp"). Registering the same
// name twice fails.
func (r *Registry) Register(pkg string, factory Factory) error {
	if factory == nil {
		return fmt.Errorf("%w: %s", ErrNilFactory, pkg)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[pkg]; exists {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, pkg)
	}
	r.factories[pkg] = factory
	return nil
}

// Names returns the registered translator package names, sorted.
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

// Lookup returns the factory registered under pkg.
func (r *Registry) Lookup(pkg string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.factories[pkg]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, pkg)
	}
	return factory, nil
}

// Create instantiates the named translator with the given onboarding
// properties and assigns the instance a fresh UUID.
func (r *Registry) Create(pkg string, props map[string]any) (*Instance, error) {
	factory, err := r.Lookup(pkg)
	if err != nil {
		return nil, err
	}

	device, err := factory(props)
	if err != nil {
		return nil, fmt.Errorf("creating translator %s: %w", pkg, err)
	}

	return &Instance{
		ID:      uuid.NewString(),
		Package: pkg,
		Device:  device,
	}, nil
}
