package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/cars24/c2b-pre-inspection-service/pkg/logger"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORSPreflight(t *testing.T) {
	cors := NewCORSMiddleware([]string{"*"})
	handler := cors.Handler(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/modules", nil)
	req.Header.Set("Origin", "https://ops.example.com")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	require.Equal(t, http.StatusNoContent, resp.Code)
	require.Equal(t, "https://ops.example.com", resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRejectsUnknownOrigin(t *testing.T) {
	cors := NewCORSMiddleware([]string{"trusted.example.com"})
	handler := cors.Handler(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/modules", nil)
	req.Header.Set("Origin", "https://evil.example.net")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	require.Empty(t, resp.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimiterRejects(t *testing.T) {
	rl := NewRateLimiter(1, 1, logger.NewNop())
	handler := rl.Handler(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/modules", nil)
	req.RemoteAddr = "10.0.0.1:1234"

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	require.Equal(t, http.StatusTooManyRequests, resp.Code)

	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &env))
	require.False(t, env.Success)
	require.NotEmpty(t, env.Message)
}

func TestRateLimiterIsPerClient(t *testing.T) {
	rl := NewRateLimiter(1, 1, logger.NewNop())
	handler := rl.Handler(okHandler())

	first := httptest.NewRequest(http.MethodGet, "/modules", nil)
	first.RemoteAddr = "10.0.0.1:1234"
	second := httptest.NewRequest(http.MethodGet, "/modules", nil)
	second.RemoteAddr = "10.0.0.2:1234"

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, first)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, second)
	require.Equal(t, http.StatusOK, resp.Code)
}

func TestAuthMiddleware(t *testing.T) {
	auth := NewAuthMiddleware("secret", logger.NewNop(), []string{"/health"})

	var seenUser string
	handler := auth.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUser = UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	// Skip path passes untouched.
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, resp.Code)

	// Missing header.
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/modules", nil))
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	// Malformed header.
	req := httptest.NewRequest(http.MethodGet, "/modules", nil)
	req.Header.Set("Authorization", "Token abc")
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	// Wrong secret.
	badToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: "u1"}).
		SignedString([]byte("other"))
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/modules", nil)
	req.Header.Set("Authorization", "Bearer "+badToken)
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	require.Equal(t, http.StatusUnauthorized, resp.Code)

	// Valid token reaches the handler with the user in context.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{UserID: "u1"}).
		SignedString([]byte("secret"))
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/modules", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp = httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "u1", seenUser)
}
