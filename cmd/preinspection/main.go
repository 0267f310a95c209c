// Package main runs the pre-inspection service: a single process
// hosting the business modules behind the module registry.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cars24/c2b-pre-inspection-service/internal/api/httpserver"
	"github.com/cars24/c2b-pre-inspection-service/internal/api/httpserver/router"
	"github.com/cars24/c2b-pre-inspection-service/internal/app"
	"github.com/cars24/c2b-pre-inspection-service/internal/config"
	"github.com/cars24/c2b-pre-inspection-service/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "Path to config file (overrides CONFIG_PATH)")
	flag.Parse()

	if *configPath != "" {
		os.Setenv("CONFIG_PATH", *configPath)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logg := logger.New(cfg.Logging).WithComponent("preinspection")

	application, err := app.New(cfg, logg)
	if err != nil {
		// Bootstrap failures abort process start; there is no partial
		// degraded-start mode.
		logg.WithError(err).Error("bootstrap failed")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Start(ctx); err != nil {
		logg.WithError(err).Error("start modules failed")
		os.Exit(1)
	}

	srv := httpserver.New(cfg.Server, logg, router.New(cfg, logg, application))

	errCh := make(chan error, 1)
	go func() {
		logg.Infof("HTTP server listening on %s", srv.Addr())
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logg.Info("shutdown signal received")
	case err := <-errCh:
		logg.WithError(err).Error("HTTP server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.WithError(err).Warn("HTTP server shutdown error")
	}
	if err := application.Stop(shutdownCtx); err != nil {
		logg.WithError(err).Warn("module shutdown error")
	}
}
