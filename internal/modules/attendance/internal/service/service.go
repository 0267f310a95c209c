// Package service is the internal implementation of the attendance
// module.
package service

import (
	"context"
	"sync"

	"github.com/cars24/c2b-pre-inspection-service/internal/module"
	"github.com/cars24/c2b-pre-inspection-service/pkg/logger"
)

// Service holds the attendance module's runtime state.
type Service struct {
	mu    sync.RWMutex
	log   *logger.Logger
	ready bool
}

// New returns a ready attendance service.
func New(log *logger.Logger) *Service {
	return &Service{
		log:   log.WithComponent("attendance"),
		ready: true,
	}
}

func (s *Service) Describe() module.Descriptor {
	return module.Descriptor{
		Name:         "attendance",
		Domain:       "pre-inspection",
		Capabilities: []string{"attendance-tracking"},
	}
}

func (s *Service) Healthy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Name implements system.Service.
func (s *Service) Name() string { return "attendance" }

func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()
	s.log.Info("attendance module started")
	return nil
}

func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.ready = false
	s.mu.Unlock()
	s.log.Info("attendance module stopped")
	return nil
}
