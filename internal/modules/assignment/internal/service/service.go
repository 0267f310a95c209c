// Package service is the internal implementation of the assignment
// module. It is importable only within internal/modules/assignment.
package service

import (
	"context"
	"sync"

	"github.com/cars24/c2b-pre-inspection-service/internal/module"
	"github.com/cars24/c2b-pre-inspection-service/pkg/logger"
)

// Service holds the assignment module's runtime state. It reaches the
// location domain exclusively through the injected contract.
type Service struct {
	mu        sync.RWMutex
	log       *logger.Logger
	locations module.Contract
	ready     bool
}

// New returns a ready assignment service wired to the location contract.
func New(log *logger.Logger, locations module.Contract) *Service {
	return &Service{
		log:       log.WithComponent("assignment"),
		locations: locations,
		ready:     true,
	}
}

// Describe reports the module descriptor, including the dependency edge
// observed through the injected contract.
func (s *Service) Describe() module.Descriptor {
	return module.Descriptor{
		Name:         "assignment",
		Domain:       "pre-inspection",
		Capabilities: []string{"evaluator-assignment"},
		DependsOn:    []string{s.locations.Describe().Name},
	}
}

// Healthy reports whether the module can serve. Health does not cascade
// through dependencies; a degraded location module is reported by the
// location module itself.
func (s *Service) Healthy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Name implements system.Service.
func (s *Service) Name() string { return "assignment" }

// Start marks the module serving.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()
	s.log.Info("assignment module started")
	return nil
}

// Stop marks the module unavailable.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.ready = false
	s.mu.Unlock()
	s.log.Info("assignment module stopped")
	return nil
}
