package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/people-api/internal/middleware"
	"github.com/deppfellow/people-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// HealthHandler serves GET /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckResult is the outcome of one dependency check.
type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthResponse is the body of GET /status.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]CheckResult `json:"checks"`
}

// CheckHealth probes the dependencies listed in
// observability.health_checks.checks and answers 200 when all of them pass,
// 503 otherwise. Redis is only probed when a client is configured. Error
// details are logged, the body only says which check failed.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      statusHealthy,
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]CheckResult),
	}

	if h.enabled("database") {
		result := h.runCheck(c.Request().Context(), &logger, "database", h.pingDatabase)
		response.Checks["database"] = result
		if result.Status != statusHealthy {
			response.Status = statusUnhealthy
		}
	}

	if h.enabled("redis") && h.server.Redis != nil {
		result := h.runCheck(c.Request().Context(), &logger, "redis", h.pingRedis)
		response.Checks["redis"] = result
		if result.Status != statusHealthy {
			response.Status = statusUnhealthy
		}
	}

	if response.Status != statusHealthy {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordEvent(map[string]interface{}{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) enabled(check string) bool {
	if h.server.Config.Observability == nil {
		return true
	}
	return h.server.Config.Observability.HasCheck(check)
}

func (h *HealthHandler) timeout() time.Duration {
	if obs := h.server.Config.Observability; obs != nil && obs.HealthChecks.Timeout > 0 {
		return obs.HealthChecks.Timeout
	}
	return 5 * time.Second
}

func (h *HealthHandler) runCheck(
	ctx context.Context,
	logger *zerolog.Logger,
	name string,
	ping func(ctx context.Context) error,
) CheckResult {
	ctx, cancel := context.WithTimeout(ctx, h.timeout())
	defer cancel()

	checkStart := time.Now()
	err := ping(ctx)
	elapsed := time.Since(checkStart)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("health check failed")

		h.recordEvent(map[string]interface{}{
			"check_type":       name,
			"operation":        "health_check",
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return CheckResult{
			Status:       statusUnhealthy,
			ResponseTime: elapsed.String(),
			Error:        name + " unreachable",
		}
	}

	logger.Debug().
		Str("check", name).
		Dur("response_time", elapsed).
		Msg("health check passed")

	return CheckResult{
		Status:       statusHealthy,
		ResponseTime: elapsed.String(),
	}
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	if h.server.DB == nil || h.server.DB.Pool == nil {
		return errors.New("database not initialized")
	}
	return h.server.DB.Pool.Ping(ctx)
}

func (h *HealthHandler) pingRedis(ctx context.Context) error {
	return h.server.Redis.Ping(ctx).Err()
}

func (h *HealthHandler) recordEvent(attributes map[string]interface{}) {
	if h.server.LoggerService != nil && h.server.LoggerService.GetApplication() != nil {
		h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attributes)
	}
}
