package module

import "fmt"

// Factory describes one module to be built during bootstrap. Build
// receives a Resolver scoped to the modules registered strictly earlier
// in the sequence, so a factory can inject cross-module dependencies by
// resolving their contracts.
type Factory struct {
	Name  string
	Build func(deps *Resolver) (Contract, error)
}

// Resolver is the dependency view handed to a factory while its module
// is being built. Resolving a name that is not registered yet (a
// forward reference or a cycle) fails with *MissingDependencyError.
type Resolver struct {
	registry *Registry
	module   string
}

// Resolve returns the contract of an earlier-registered module.
func (r *Resolver) Resolve(name string) (Contract, error) {
	contract, err := r.registry.Resolve(name)
	if err != nil {
		return nil, &MissingDependencyError{Module: r.module, Dependency: name}
	}
	return contract, nil
}

// Bootstrap runs the factories in order, registering each contract under
// its factory's name, then closes the registry. Any factory or
// registration failure aborts the whole bootstrap; there is no partial
// degraded-start mode.
func Bootstrap(factories []Factory) (*Registry, error) {
	registry := NewRegistry()

	for _, factory := range factories {
		if factory.Name == "" {
			return nil, fmt.Errorf("bootstrap: factory with empty module name")
		}
		if factory.Build == nil {
			return nil, fmt.Errorf("bootstrap: module %s has no build function", factory.Name)
		}

		contract, err := factory.Build(&Resolver{registry: registry, module: factory.Name})
		if err != nil {
			return nil, fmt.Errorf("build module %s: %w", factory.Name, err)
		}
		if contract == nil {
			return nil, fmt.Errorf("build module %s: factory returned no contract", factory.Name)
		}
		if err := registry.Register(factory.Name, contract); err != nil {
			return nil, err
		}
	}

	registry.Close()
	return registry, nil
}
