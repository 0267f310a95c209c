// Package app composes the business modules into one running process.
// It is the only place where module implementations are constructed and
// wired to their contracts; everything else sees contracts through the
// registry.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/cars24/c2b-pre-inspection-service/internal/app/system"
	"github.com/cars24/c2b-pre-inspection-service/internal/config"
	"github.com/cars24/c2b-pre-inspection-service/internal/metrics"
	"github.com/cars24/c2b-pre-inspection-service/internal/module"
	"github.com/cars24/c2b-pre-inspection-service/internal/modules/appointment"
	"github.com/cars24/c2b-pre-inspection-service/internal/modules/assignment"
	"github.com/cars24/c2b-pre-inspection-service/internal/modules/attendance"
	"github.com/cars24/c2b-pre-inspection-service/internal/modules/location"
	"github.com/cars24/c2b-pre-inspection-service/internal/modules/pipeline"
	"github.com/cars24/c2b-pre-inspection-service/internal/shared"
	"github.com/cars24/c2b-pre-inspection-service/pkg/logger"
)

// HealthStatus is the aggregate health of the process.
type HealthStatus string

const (
	HealthUp       HealthStatus = "UP"
	HealthDegraded HealthStatus = "DEGRADED"
)

// HealthReport names the modules that failed their health check. An
// empty Failing list means every module is up.
type HealthReport struct {
	Status  HealthStatus `json:"status"`
	Failing []string     `json:"failing,omitempty"`
}

// ModuleStatus is the introspection view of one registered module.
type ModuleStatus struct {
	Descriptor module.Descriptor `json:"descriptor"`
	Healthy    bool              `json:"healthy"`
}

// Application ties the domain modules together and manages their
// lifecycle.
type Application struct {
	cfg      *config.Config
	registry *module.Registry
	manager  *system.Manager
	log      *logger.Logger

	Location    location.Client
	Attendance  attendance.Client
	Appointment appointment.Client
	Pipeline    pipeline.Client
	Assignment  assignment.Client
}

// New bootstraps the default module set. Modules are built in
// dependency order; assignment and appointment resolve the location
// contract during their own build. Any bootstrap failure is returned
// and the process must not start serving.
func New(cfg *config.Config, log *logger.Logger) (*Application, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.NewDefault("app")
	}

	locationMod := location.New(log)
	attendanceMod := attendance.New(log)
	appointmentMod := appointment.New(log)
	pipelineMod := pipeline.New(log)
	assignmentMod := assignment.New(log)

	type entry struct {
		name    string
		factory module.Factory
		runner  func() system.Service
	}
	entries := []entry{
		{location.ModuleName, locationMod.Factory(), locationMod.Runner},
		{attendance.ModuleName, attendanceMod.Factory(), attendanceMod.Runner},
		{appointment.ModuleName, appointmentMod.Factory(), appointmentMod.Runner},
		{pipeline.ModuleName, pipelineMod.Factory(), pipelineMod.Runner},
		{assignment.ModuleName, assignmentMod.Factory(), assignmentMod.Runner},
	}

	var factories []module.Factory
	var enabled []entry
	for _, e := range entries {
		if !moduleEnabled(cfg, e.name) {
			log.Warnf("module %s disabled by configuration", e.name)
			continue
		}
		factories = append(factories, e.factory)
		enabled = append(enabled, e)
	}

	app, err := NewWithFactories(cfg, log, factories)
	if err != nil {
		return nil, err
	}

	for _, e := range enabled {
		if err := app.manager.Register(e.runner()); err != nil {
			return nil, fmt.Errorf("register %s runner: %w", e.name, err)
		}
	}

	if c, err := app.registry.Resolve(location.ModuleName); err == nil {
		app.Location = c
	}
	if c, err := app.registry.Resolve(attendance.ModuleName); err == nil {
		app.Attendance = c
	}
	if c, err := app.registry.Resolve(appointment.ModuleName); err == nil {
		app.Appointment = c
	}
	if c, err := app.registry.Resolve(pipeline.ModuleName); err == nil {
		app.Pipeline = c
	}
	if c, err := app.registry.Resolve(assignment.ModuleName); err == nil {
		app.Assignment = c
	}

	return app, nil
}

// NewWithFactories bootstraps an application from an explicit factory
// sequence. Tests use this to compose isolated module sets.
func NewWithFactories(cfg *config.Config, log *logger.Logger, factories []module.Factory) (*Application, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.NewDefault("app")
	}

	start := time.Now()
	registry, err := module.Bootstrap(factories)
	if err != nil {
		return nil, fmt.Errorf("bootstrap modules: %w", err)
	}
	metrics.RecordBootstrapDuration(time.Since(start))
	log.Infof("bootstrapped %d modules: %v", registry.Len(), registry.Names())

	return &Application{
		cfg:      cfg,
		registry: registry,
		manager:  system.NewManager(),
		log:      log,
	}, nil
}

// Attach registers an additional lifecycle-managed service. Call before
// Start.
func (a *Application) Attach(service system.Service) error {
	return a.manager.Register(service)
}

// Start begins all registered module runners.
func (a *Application) Start(ctx context.Context) error {
	return a.manager.Start(ctx)
}

// Stop stops all module runners in reverse order.
func (a *Application) Stop(ctx context.Context) error {
	return a.manager.Stop(ctx)
}

// Resolve returns a module's public contract by name.
func (a *Application) Resolve(name string) (module.Contract, error) {
	return a.registry.Resolve(name)
}

// Registry exposes the closed module registry.
func (a *Application) Registry() *module.Registry {
	return a.registry
}

// AggregateHealth queries every registered module's health capability.
// Degradation is a reportable state, not a failure of the check itself,
// so the envelope is always the success path.
func (a *Application) AggregateHealth() shared.Response[HealthReport] {
	var failing []string
	for _, name := range a.registry.Names() {
		contract, err := a.registry.Resolve(name)
		if err != nil {
			failing = append(failing, name)
			continue
		}
		healthy := contract.Healthy()
		metrics.RecordModuleHealth(name, healthy)
		if !healthy {
			failing = append(failing, name)
		}
	}

	report := HealthReport{Status: HealthUp}
	if len(failing) > 0 {
		report.Status = HealthDegraded
		report.Failing = failing
	}
	return shared.Success(report)
}

// Modules returns the status of every registered module in registration
// order.
func (a *Application) Modules() []ModuleStatus {
	names := a.registry.Names()
	statuses := make([]ModuleStatus, 0, len(names))
	for _, name := range names {
		contract, err := a.registry.Resolve(name)
		if err != nil {
			continue
		}
		statuses = append(statuses, ModuleStatus{
			Descriptor: contract.Describe(),
			Healthy:    contract.Healthy(),
		})
	}
	return statuses
}

// Module returns the status of one module. The caller decides whether a
// *module.ModuleNotFoundError degrades gracefully or aborts.
func (a *Application) Module(name string) (ModuleStatus, error) {
	contract, err := a.registry.Resolve(name)
	if err != nil {
		return ModuleStatus{}, err
	}
	return ModuleStatus{Descriptor: contract.Describe(), Healthy: contract.Healthy()}, nil
}

func moduleEnabled(cfg *config.Config, name string) bool {
	if cfg.Modules == nil {
		return true
	}
	settings, ok := cfg.Modules[name]
	if !ok {
		return true
	}
	return settings.Enabled
}
