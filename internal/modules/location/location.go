// Package location owns the location business domain: inspection
// centers, serviceability and address data. Only the Client contract is
// visible to the rest of the process; the implementation lives under
// internal/ and cannot be imported from outside this module.
package location

import (
	"github.com/cars24/c2b-pre-inspection-service/internal/app/system"
	"github.com/cars24/c2b-pre-inspection-service/internal/module"
	"github.com/cars24/c2b-pre-inspection-service/internal/modules/location/internal/service"
	"github.com/cars24/c2b-pre-inspection-service/pkg/logger"
)

// ModuleName is the registry name of the location module.
const ModuleName = "location"

// Client is the public contract of the location module.
type Client interface {
	module.Contract
}

// Module wires the hidden implementation to the public contract.
type Module struct {
	log  *logger.Logger
	impl *service.Service
}

// New prepares the module for bootstrap.
func New(log *logger.Logger) *Module {
	return &Module{log: log}
}

// Factory returns the bootstrap factory registering this module.
func (m *Module) Factory() module.Factory {
	return module.Factory{
		Name: ModuleName,
		Build: func(deps *module.Resolver) (module.Contract, error) {
			m.impl = service.New(m.log)
			return client{impl: m.impl}, nil
		},
	}
}

// Runner returns the module's lifecycle service. Valid once the factory
// has run.
func (m *Module) Runner() system.Service {
	return m.impl
}

// client delegates the contract to the hidden implementation. The
// implementation type itself never leaves the module.
type client struct {
	impl *service.Service
}

func (c client) Describe() module.Descriptor { return c.impl.Describe() }

func (c client) Healthy() bool { return c.impl.Healthy() }
