// Package httpserver wraps the standard HTTP server with the platform's
// timeout and shutdown conventions.
package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cars24/c2b-pre-inspection-service/internal/config"
	"github.com/cars24/c2b-pre-inspection-service/pkg/logger"
)

// Server hosts the platform HTTP API.
type Server struct {
	srv *http.Server
	log *logger.Logger
}

// New builds a server from config with the provided handler.
func New(cfg config.ServerConfig, log *logger.Logger, handler http.Handler) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
			Handler:      handler,
			ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		},
		log: log,
	}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// Start blocks serving requests until Shutdown or failure.
func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests and closes the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
