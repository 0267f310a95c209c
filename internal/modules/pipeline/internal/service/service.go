// Package service is the internal implementation of the pipeline
// module.
package service

import (
	"context"
	"sync"

	"github.com/cars24/c2b-pre-inspection-service/internal/module"
	"github.com/cars24/c2b-pre-inspection-service/pkg/logger"
)

// Service holds the pipeline module's runtime state.
type Service struct {
	mu    sync.RWMutex
	log   *logger.Logger
	ready bool
}

// New returns a ready pipeline service.
func New(log *logger.Logger) *Service {
	return &Service{
		log:   log.WithComponent("pipeline"),
		ready: true,
	}
}

func (s *Service) Describe() module.Descriptor {
	return module.Descriptor{
		Name:         "pipeline",
		Domain:       "pre-inspection",
		Capabilities: []string{"inspection-pipeline"},
	}
}

func (s *Service) Healthy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Name implements system.Service.
func (s *Service) Name() string { return "pipeline" }

func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()
	s.log.Info("pipeline module started")
	return nil
}

func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.ready = false
	s.mu.Unlock()
	s.log.Info("pipeline module stopped")
	return nil
}
