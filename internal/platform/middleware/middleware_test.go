// Copyright (c) 2026 Tagdex. All rights reserved.
// Author: an.phamduy.dev@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phamduyan/tagdex/internal/platform/ctxutil"
	"github.com/phamduyan/tagdex/internal/platform/middleware"
)

/*
TestRequestID_Generated verifies that a correlation ID is generated and
exposed both in the context and the response header.
*/
func TestRequestID_Generated(t *testing.T) {
	var seenID string
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		seenID = ctxutil.GetRequestID(request.Context())
	})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/tags", nil)

	middleware.RequestID()(next).ServeHTTP(recorder, request)

	require.NotEmpty(t, seenID)
	assert.Equal(t, seenID, recorder.Header().Get("X-Request-ID"))
}

/*
TestRequestID_ClientProvided verifies that a caller-supplied ID is preserved.
*/
func TestRequestID_ClientProvided(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "client-id-1", ctxutil.GetRequestID(request.Context()))
	})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/tags", nil)
	request.Header.Set("X-Request-ID", "client-id-1")

	middleware.RequestID()(next).ServeHTTP(recorder, request)

	assert.Equal(t, "client-id-1", recorder.Header().Get("X-Request-ID"))
}

/*
TestPanicRecovery verifies that a downstream panic becomes a 500 with the
standard error envelope instead of crashing the server.
*/
func TestPanicRecovery(t *testing.T) {
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/v1/tags", nil)

	logger := ctxutil.GetLogger(request.Context())
	middleware.PanicRecovery(logger)(next).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, recorder.Body.String())
}

/*
TestRealIP covers the proxy header fallback order.
*/
func TestRealIP(t *testing.T) {
	tests := []struct {
		name       string
		realIP     string
		forwarded  string
		remoteAddr string
		want       string
	}{
		{"x_real_ip_wins", "203.0.113.7", "198.51.100.1", "192.0.2.1:4444", "203.0.113.7"},
		{"forwarded_first_hop", "", "198.51.100.1, 10.0.0.1", "192.0.2.1:4444", "198.51.100.1"},
		{"remote_addr_fallback", "", "", "192.0.2.1:4444", "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.RemoteAddr = tt.remoteAddr
			if tt.realIP != "" {
				request.Header.Set("X-Real-IP", tt.realIP)
			}
			if tt.forwarded != "" {
				request.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			assert.Equal(t, tt.want, middleware.RealIP(request))
		})
	}
}

// corsConfig is a minimal AppConfig stub for CORS tests.
type corsConfig struct {
	dev     bool
	origins []string
}

func (c corsConfig) IsDevelopment() bool      { return c.dev }
func (c corsConfig) AllowedOrigins() []string { return c.origins }

/*
TestCORS verifies origin allow-listing in production mode.
*/
func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
	cfg := corsConfig{dev: false, origins: []string{"https://app.tagdex.dev"}}

	t.Run("allowed_origin", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/api/v1/tags", nil)
		request.Header.Set("Origin", "https://app.tagdex.dev")

		middleware.CORS(cfg)(next).ServeHTTP(recorder, request)

		assert.Equal(t, "https://app.tagdex.dev", recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown_origin", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/api/v1/tags", nil)
		request.Header.Set("Origin", "https://evil.example")

		middleware.CORS(cfg)(next).ServeHTTP(recorder, request)

		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight_short_circuits", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodOptions, "/api/v1/tags", nil)
		request.Header.Set("Origin", "https://app.tagdex.dev")

		middleware.CORS(cfg)(next).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
	})
}
