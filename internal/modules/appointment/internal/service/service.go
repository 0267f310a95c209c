// Package service is the internal implementation of the appointment
// module.
package service

import (
	"context"
	"sync"

	"github.com/cars24/c2b-pre-inspection-service/internal/module"
	"github.com/cars24/c2b-pre-inspection-service/pkg/logger"
)

// Service holds the appointment module's runtime state.
type Service struct {
	mu        sync.RWMutex
	log       *logger.Logger
	locations module.Contract
	ready     bool
}

// New returns a ready appointment service wired to the location
// contract.
func New(log *logger.Logger, locations module.Contract) *Service {
	return &Service{
		log:       log.WithComponent("appointment"),
		locations: locations,
		ready:     true,
	}
}

func (s *Service) Describe() module.Descriptor {
	return module.Descriptor{
		Name:         "appointment",
		Domain:       "pre-inspection",
		Capabilities: []string{"appointment-scheduling"},
		DependsOn:    []string{s.locations.Describe().Name},
	}
}

func (s *Service) Healthy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Name implements system.Service.
func (s *Service) Name() string { return "appointment" }

func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()
	s.log.Info("appointment module started")
	return nil
}

func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.ready = false
	s.mu.Unlock()
	s.log.Info("appointment module stopped")
	return nil
}
