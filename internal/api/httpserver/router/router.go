// Package router defines the HTTP routes and middleware chain of the
// platform API.
package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cars24/c2b-pre-inspection-service/internal/app"
	"github.com/cars24/c2b-pre-inspection-service/internal/config"
	"github.com/cars24/c2b-pre-inspection-service/internal/metrics"
	"github.com/cars24/c2b-pre-inspection-service/internal/middleware"
	"github.com/cars24/c2b-pre-inspection-service/pkg/logger"
)

// probePaths are never gated by auth or rate limiting: orchestrators
// must always be able to reach them.
var probePaths = []string{"/health", "/healthz", "/metrics"}

// New builds the API router for the application.
func New(cfg *config.Config, log *logger.Logger, application *app.Application) http.Handler {
	h := &handler{app: application, log: log}

	r := mux.NewRouter()
	r.HandleFunc("/health", h.health).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.liveness).Methods(http.MethodGet)
	r.HandleFunc("/modules", h.modules).Methods(http.MethodGet)
	r.HandleFunc("/modules/{name}", h.module).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.NotFoundHandler = http.HandlerFunc(h.notFound)

	r.Use(middleware.LoggingMiddleware(log))

	var chain http.Handler = r
	if cfg.Auth.JWTSecret != "" {
		auth := middleware.NewAuthMiddleware(cfg.Auth.JWTSecret, log, probePaths)
		chain = auth.Handler(chain)
	}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		chain = bypassProbes(limiter.Handler(chain), chain)
	}
	cors := middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins)
	chain = cors.Handler(chain)
	chain = metrics.InstrumentHandler(chain)

	return chain
}

// bypassProbes routes probe paths around a gating middleware.
func bypassProbes(gated, direct http.Handler) http.Handler {
	probes := make(map[string]bool, len(probePaths))
	for _, p := range probePaths {
		probes[p] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if probes[r.URL.Path] {
			direct.ServeHTTP(w, r)
			return
		}
		gated.ServeHTTP(w, r)
	})
}
