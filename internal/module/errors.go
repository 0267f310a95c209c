package module

import "fmt"

// DuplicateModuleError reports a second registration under a name that
// is already bound. The original binding is left untouched.
type DuplicateModuleError struct {
	Name string
}

func (e *DuplicateModuleError) Error() string {
	return fmt.Sprintf("module already registered: %s", e.Name)
}

// RegistryClosedError reports a registration attempted after Close.
// This is a programming error in bootstrap ordering.
type RegistryClosedError struct {
	Name string
}

func (e *RegistryClosedError) Error() string {
	return fmt.Sprintf("registry closed: cannot register module %s", e.Name)
}

// ModuleNotFoundError reports resolution of a name that was never
// registered.
type ModuleNotFoundError struct {
	Name string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("module not found: %s", e.Name)
}

// MissingDependencyError reports a factory resolving a module that is
// not registered yet. Forward references and cycles between factories
// surface as this error at bootstrap, never as a runtime deadlock.
type MissingDependencyError struct {
	Module     string
	Dependency string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("module %s depends on %s, which is not registered yet", e.Module, e.Dependency)
}
