// Package module implements the module registry and visibility gate for
// the pre-inspection platform.
//
// Every business domain ships as a module: a narrow public contract plus
// a hidden implementation. Implementations live under
// internal/modules/<name>/internal/, which the Go toolchain makes
// unimportable from anywhere outside that module's own subtree. The
// registry only ever holds Contract values, so no component can reach
// another module's implementation type, neither at compile time nor
// through the registry at runtime.
package module

// Contract is the capability set a module exposes to the rest of the
// process. It is the only type other modules may reference.
type Contract interface {
	// Describe reports the module's identity and advertised capabilities.
	Describe() Descriptor

	// Healthy reports whether the module is able to serve.
	Healthy() bool
}

// Descriptor advertises a module's placement and capabilities. It does
// not change runtime behavior, but lets the composition root and the
// HTTP surface reason about modules consistently.
type Descriptor struct {
	Name         string   `json:"name"`
	Domain       string   `json:"domain"`
	Capabilities []string `json:"capabilities,omitempty"`
	DependsOn    []string `json:"depends_on,omitempty"`
}

// WithCapabilities returns a copy of the descriptor with additional
// capabilities appended.
func (d Descriptor) WithCapabilities(caps ...string) Descriptor {
	if len(caps) == 0 {
		return d
	}
	combined := make([]string, 0, len(d.Capabilities)+len(caps))
	combined = append(combined, d.Capabilities...)
	combined = append(combined, caps...)
	d.Capabilities = combined
	return d
}
