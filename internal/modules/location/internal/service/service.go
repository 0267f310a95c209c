// Package service is the internal implementation of the location
// module. It is importable only within internal/modules/location.
package service

import (
	"context"
	"sync"

	"github.com/cars24/c2b-pre-inspection-service/internal/module"
	"github.com/cars24/c2b-pre-inspection-service/pkg/logger"
)

// Service holds the location module's runtime state.
type Service struct {
	mu    sync.RWMutex
	log   *logger.Logger
	ready bool
}

// New returns a ready location service.
func New(log *logger.Logger) *Service {
	return &Service{
		log:   log.WithComponent("location"),
		ready: true,
	}
}

// Describe reports the module descriptor.
func (s *Service) Describe() module.Descriptor {
	return module.Descriptor{
		Name:         "location",
		Domain:       "pre-inspection",
		Capabilities: []string{"address-lookup", "serviceability"},
	}
}

// Healthy reports whether the module can serve.
func (s *Service) Healthy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Name implements system.Service.
func (s *Service) Name() string { return "location" }

// Start marks the module serving.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()
	s.log.Info("location module started")
	return nil
}

// Stop marks the module unavailable.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.ready = false
	s.mu.Unlock()
	s.log.Info("location module stopped")
	return nil
}
