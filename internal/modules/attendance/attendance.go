// Package attendance owns the evaluator attendance domain.
package attendance

import (
	"github.com/cars24/c2b-pre-inspection-service/internal/app/system"
	"github.com/cars24/c2b-pre-inspection-service/internal/module"
	"github.com/cars24/c2b-pre-inspection-service/internal/modules/attendance/internal/service"
	"github.com/cars24/c2b-pre-inspection-service/pkg/logger"
)

// ModuleName is the registry name of the attendance module.
const ModuleName = "attendance"

// Client is the public contract of the attendance module.
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

type client struct {
	impl *service.Service
}

func (c client) Describe() module.Descriptor { return c.impl.Describe() }

func (c client) Healthy() bool { return c.impl.Healthy() }
