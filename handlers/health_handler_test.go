package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ideamk/leadmail/services"
	"github.com/ideamk/leadmail/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHealthRouter(readyErr error) *gin.Engine {
	mailer := new(MockMailer)
	mailer.On("Ready").Return(readyErr)
	h := NewHealthHandler(services.NewHealthService(mailer, "test"))

	r := gin.New()
	r.GET("/health", h.DetailedHealth)
	r.GET("/health/liveness", h.LivenessCheck)
	r.GET("/health/readiness", h.ReadinessCheck)
	return r
}

func TestHealthHandler(t *testing.T) {
	testCases := []struct {
		name       string
		path       string
		readyErr   error
		wantStatus int
		wantHealth types.HealthStatus
	}{
		{"liveness ignores mailer", "/health/liveness", services.ErrSMTPCredentialsMissing, http.StatusOK, ""},
		{"readiness up", "/health/readiness", nil, http.StatusOK, types.HealthStatusUp},
		{"readiness down", "/health/readiness", services.ErrSMTPCredentialsMissing, http.StatusServiceUnavailable, types.HealthStatusDown},
		{"detailed down still 200", "/health", services.ErrSMTPCredentialsMissing, http.StatusOK, types.HealthStatusDown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tc.path, nil)
			setupHealthRouter(tc.readyErr).ServeHTTP(w, req)

			assert.Equal(t, tc.wantStatus, w.Code)
			if tc.wantHealth == "" {
				return
			}
			var health types.HealthCheck
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
			assert.Equal(t, tc.wantHealth, health.Status)
			assert.Equal(t, "test", health.Version)
		})
	}
}
