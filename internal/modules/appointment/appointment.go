// Package appointment owns the appointment scheduling domain.
// Appointments are tied to inspection locations, so the module resolves
// the location contract at bootstrap.
package appointment

import (
	"github.com/cars24/c2b-pre-inspection-service/internal/app/system"
	"github.com/cars24/c2b-pre-inspection-service/internal/module"
	"github.com/cars24/c2b-pre-inspection-service/internal/modules/appointment/internal/service"
	"github.com/cars24/c2b-pre-inspection-service/internal/modules/location"
	"github.com/cars24/c2b-pre-inspection-service/pkg/logger"
)

// ModuleName is the registry name of the appointment module.
const ModuleName = "appointment"

// Client is the public contract of the appointment module.
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

// Factory returns the bootstrap factory. The location module must be
// registered earlier in the bootstrap sequence.
func (m *Module) Factory() module.Factory {
	return module.Factory{
		Name: ModuleName,
		Build: func(deps *module.Resolver) (module.Contract, error) {
			locations, err := deps.Resolve(location.ModuleName)
			if err != nil {
				return nil, err
			}
			m.impl = service.New(m.log, locations)
			return client{impl: m.impl}, nil
		},
	}
}

// Runner returns the module's lifecycle service. Valid once the factory
// has run.
func (m *Module) Runner() system.Service {
	return m.impl
}

type client struct {
	impl *service.Service
}

func (c client) Describe() module.Descriptor { return c.impl.Describe() }

func (c client) Healthy() bool { return c.impl.Healthy() }
