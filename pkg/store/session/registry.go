package session

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Factory builds a Store for a backend
type Factory func(ctx context.Context, settings Settings) (Store, error)

// Registry manages session store backends by name
type Registry interface {
	// Register adds a new backend factory
	Register(backend string, factory Factory) error
	// Create instantiates the store for the named backend
	Create(ctx context.Context, backend string, settings Settings) (Store, error)
	// ListBackends returns the registered backend names, sorted
	ListBackends() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() Registry {
	return &registry{
		factories: make(map[string]Factory),
	}
}

func (r *registry) Register(backend string, factory Factory) error {
	if backend == "" {
		return fmt.Errorf("backend name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[backend]; exists {
		return fmt.Errorf("backend %q is already registered", backend)
	}

	r.factories[backend] = factory
	return nil
}

func (r *registry) Create(ctx context.Context, backend string, settings Settings) (Store, error) {
	r.mu.RLock()
	factory, exists := r.factories[backend]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("session backend %q is not registered", backend)
	}

	return factory(ctx, settings)
}

func (r *registry) ListBackends() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	backends := make([]string, 0, len(r.factories))
	for backend := range r.factories {
		backends = append(backends, backend)
	}
	slices.Sort(backends)
	return backends
}
