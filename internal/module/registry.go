package module

import "sync"

// Registry maps module names to their public contracts. It is built by
// the composition root during a single-threaded bootstrap phase and is
// read-only for the rest of the process lifetime.
//
// State machine: Open -> (Register)* -> Close -> Closed. Registration is
// only legal while open; resolution is legal in either state. Construct
// registries explicitly (one per process, or one per test); there is no
// package-level instance.
type Registry struct {
	mu        sync.RWMutex
	closed    bool
	contracts map[string]Contract
	order     []string
}

// NewRegistry returns an empty, open registry.
func NewRegistry() *Registry {
	return &Registry{contracts: make(map[string]Contract)}
}

// Register binds name to contract. It fails with *RegistryClosedError
// after Close and with *DuplicateModuleError if the name is taken; a
// failed registration never overwrites the existing binding.
func (r *Registry) Register(name string, contract Contract) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return &RegistryClosedError{Name: name}
	}
	if _, exists := r.contracts[name]; exists {
		return &DuplicateModuleError{Name: name}
	}

	r.contracts[name] = contract
	r.order = append(r.order, name)
	return nil
}

// Resolve returns the contract registered under name, or
// *ModuleNotFoundError if there is none.
func (r *Registry) Resolve(name string) (Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contract, ok := r.contracts[name]
	if !ok {
		return nil, &ModuleNotFoundError{Name: name}
	}
	return contract, nil
}

// Close transitions the registry to read-only. Idempotent.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
}

// Closed reports whether the registry has been closed.
func (r *Registry) Closed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.closed
}

// Names returns the registered module names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
