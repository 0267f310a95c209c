package system

import (
	"context"
	"fmt"
	"sync"
)

// Manager registers services during bootstrap and runs them: start in
// registration order, stop in reverse order.
type Manager struct {
	mu       sync.Mutex
	services []Service
	names    map[string]struct{}
	started  bool
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{names: make(map[string]struct{})}
}

// Register adds a service. Call before Start; duplicate names and
// post-start registration are rejected.
func (m *Manager) Register(service Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.started {
		return fmt.Errorf("manager already started: cannot register %s", service.Name())
	}
	name := service.Name()
	if name == "" {
		return fmt.Errorf("service has no name")
	}
	if _, exists := m.names[name]; exists {
		return fmt.Errorf("service already registered: %s", name)
	}

	m.names[name] = struct{}{}
	m.services = append(m.services, service)
	return nil
}

// Start starts all registered services in registration order. The first
// failure aborts the start and is returned.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return nil
	}
	m.started = true
	services := append([]Service(nil), m.services...)
	m.mu.Unlock()

	for _, svc := range services {
		if err := svc.Start(ctx); err != nil {
			return fmt.Errorf("start %s: %w", svc.Name(), err)
		}
	}
	return nil
}

// Stop stops all services in reverse registration order. Every service
// is stopped; the last error wins.
func (m *Manager) Stop(ctx context.Context) error {
	m.mu.Lock()
	services := append([]Service(nil), m.services...)
	m.started = false
	m.mu.Unlock()

	var lastErr error
	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Stop(ctx); err != nil {
			lastErr = fmt.Errorf("stop %s: %w", services[i].Name(), err)
		}
	}
	return lastErr
}
