package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deppfellow/people-api/internal/config"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func newHealthHandler(obs *config.ObservabilityConfig) *HealthHandler {
	logger := zerolog.Nop()
	return NewHealthHandler(&server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Observability: obs,
		},
		Logger: &logger,
	})
}

func checkHealth(t *testing.T, h *HealthHandler) (int, HealthResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	rec := httptest.NewRecorder()
	assert.NilError(t, h.CheckHealth(echo.New().NewContext(req, rec)))

	var body HealthResponse
	assert.NilError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestCheckHealthDatabaseDown(t *testing.T) {
	obs := config.DefaultObservabilityConfig()
	obs.HealthChecks.Timeout = time.Second

	code, body := checkHealth(t, newHealthHandler(obs))

	assert.Check(t, is.Equal(code, http.StatusServiceUnavailable))
	assert.Check(t, is.Equal(body.Status, statusUnhealthy))
	assert.Check(t, is.Equal(body.Checks["database"].Status, statusUnhealthy))

	// Redis is not configured, so it is not reported.
	_, ok := body.Checks["redis"]
	assert.Check(t, !ok)
}

func TestCheckHealthSkipsDisabledChecks(t *testing.T) {
	obs := config.DefaultObservabilityConfig()
	obs.HealthChecks.Checks = []string{"redis"}

	code, body := checkHealth(t, newHealthHandler(obs))

	assert.Check(t, is.Equal(code, http.StatusOK))
	assert.Check(t, is.Equal(body.Status, statusHealthy))
	assert.Check(t, is.Len(body.Checks, 0))
	assert.Check(t, is.Equal(body.Environment, "test"))
}
