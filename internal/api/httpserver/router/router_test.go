package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cars24/c2b-pre-inspection-service/internal/app"
	"github.com/cars24/c2b-pre-inspection-service/internal/config"
	"github.com/cars24/c2b-pre-inspection-service/internal/middleware"
	"github.com/cars24/c2b-pre-inspection-service/pkg/logger"
)

func newTestRouter(t *testing.T, cfg *config.Config) (http.Handler, *app.Application) {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	log := logger.NewNop()
	application, err := app.New(cfg, log)
	if err != nil {
		t.Fatalf("new application: %v", err)
	}
	return New(cfg, log, application), application
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("unmarshal envelope: %v (body %s)", err, body)
	}
	return env
}

func TestHealthEndpoint(t *testing.T) {
	handler, _ := newTestRouter(t, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	env := decodeEnvelope(t, resp.Body.Bytes())
	if !env.Success {
		t.Fatal("expected success envelope")
	}

	var report struct {
		Status  string   `json:"status"`
		Failing []string `json:"failing"`
	}
	if err := json.Unmarshal(env.Data, &report); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if report.Status != "UP" {
		t.Fatalf("expected UP, got %s (failing %v)", report.Status, report.Failing)
	}
}

func TestHealthDegradedStill200(t *testing.T) {
	handler, application := newTestRouter(t, nil)

	// Stopping the modules flips their health signal.
	if err := application.Stop(context.Background()); err != nil {
		t.Fatalf("stop: %v", err)
	}

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("degraded health must still be 200, got %d", resp.Code)
	}

	env := decodeEnvelope(t, resp.Body.Bytes())
	var report struct {
		Status  string   `json:"status"`
		Failing []string `json:"failing"`
	}
	if err := json.Unmarshal(env.Data, &report); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if report.Status != "DEGRADED" || len(report.Failing) != 5 {
		t.Fatalf("expected all modules failing, got %+v", report)
	}
}

func TestLivenessEndpoint(t *testing.T) {
	handler, _ := newTestRouter(t, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestModulesEndpoint(t *testing.T) {
	handler, _ := newTestRouter(t, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/modules", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	env := decodeEnvelope(t, resp.Body.Bytes())
	var statuses []struct {
		Descriptor struct {
			Name string `json:"name"`
		} `json:"descriptor"`
		Healthy bool `json:"healthy"`
	}
	if err := json.Unmarshal(env.Data, &statuses); err != nil {
		t.Fatalf("unmarshal statuses: %v", err)
	}
	if len(statuses) != 5 {
		t.Fatalf("expected 5 modules, got %d", len(statuses))
	}
	if statuses[0].Descriptor.Name != "location" {
		t.Fatalf("expected registration order, got %s first", statuses[0].Descriptor.Name)
	}
}

func TestModuleEndpointNotFound(t *testing.T) {
	handler, _ := newTestRouter(t, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/modules/billing", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}

	env := decodeEnvelope(t, resp.Body.Bytes())
	if env.Success {
		t.Fatal("expected error envelope")
	}
	if env.Message == "" {
		t.Fatal("expected diagnostic message")
	}
}

func TestUnknownRoute(t *testing.T) {
	handler, _ := newTestRouter(t, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/nope", nil))
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	handler, _ := newTestRouter(t, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestAuthGatesModuleAPI(t *testing.T) {
	cfg := config.Default()
	cfg.Auth.JWTSecret = "test-secret"
	handler, _ := newTestRouter(t, cfg)

	// Probes stay open.
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("health must not be gated, got %d", resp.Code)
	}

	// Module API requires a token.
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/modules", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &middleware.Claims{UserID: "ops"}).
		SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/modules", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", resp.Code)
	}
}

func TestTraceIDHeader(t *testing.T) {
	handler, _ := newTestRouter(t, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	if resp.Header().Get("X-Trace-ID") == "" {
		t.Fatal("expected X-Trace-ID response header")
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if got := resp.Header().Get("X-Trace-ID"); got != "trace-123" {
		t.Fatalf("expected propagated trace ID, got %q", got)
	}
}
