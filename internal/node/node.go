package node

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"sendseven/internal/types"
)

// Resource defines the interface every action resource must implement.
type Resource interface {
	// Name returns the resource identifier (e.g. "contact", "message").
	Name() string

	// Operations returns the available operations with their parameter and
	// output schemas.
	Operations() []types.OperationDef

	// Execute runs one operation with already-resolved parameters and
	// returns the produced output items.
	Execute(ctx context.Context, operation string, params map[string]any) ([]map[string]any, error)
}

// Registry holds all registered resources.
type Registry struct {
	mu        sync.RWMutex
	resources map[string]Resource
}

// NewRegistry creates a new empty resource registry.
func NewRegistry() *Registry {
	return &Registry{
		resources: make(map[string]Resource),
	}
}

// Register adds a resource to the registry.
func (r *Registry) Register(res Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := res.Name()
	if _, exists := r.resources[name]; exists {
		return fmt.Errorf("resource %q already registered", name)
	}
	r.resources[name] = res
	return nil
}

// Get returns a resource by name.
func (r *Registry) Get(name string) (Resource, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.resources[name]
	return res, ok
}

// List returns the names of all registered resources, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.resources))
	for name := range r.resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Operation looks up one operation definition on a resource.
func (r *Registry) Operation(resource, operation string) (*types.OperationDef, error) {
	res, ok := r.Get(resource)
	if !ok {
		return nil, fmt.Errorf("resource %q not found", resource)
	}
	for _, op := range res.Operations() {
		if op.Name == operation {
			return &op, nil
		}
	}
	return nil, fmt.Errorf("resource %q has no operation %q", resource, operation)
}
