package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/filmorate/internal/middleware"
	"github.com/deppfellow/filmorate/internal/server"
	"github.com/deppfellow/filmorate/internal/service"
	"github.com/labstack/echo/v4"
)

// Health check names accepted in observability.health_checks.checks.
const (
	CheckFilms = "films"
	CheckUsers = "users"
)

// checkFunc reports the number of records a registry holds.
type checkFunc func(ctx context.Context) (int, error)

// HealthHandler exposes the status endpoint used by monitors and load
// balancers. Every configured check reads its registry size.
type HealthHandler struct {
	Handler
	checks map[string]checkFunc
}

func NewHealthHandler(s *server.Server, services *service.Services) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		checks: map[string]checkFunc{
			CheckFilms: countCheck(services.Films.Count),
			CheckUsers: countCheck(services.Users.Count),
		},
	}
}

func countCheck(count func() int) checkFunc {
	return func(ctx context.Context) (int, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		return count(), nil
	}
}

// CheckHealth returns 200 when every configured check passes and 503
// otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	cfg := h.server.Config.Observability.HealthChecks

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true

	if cfg.Enabled {
		ctx, cancel := context.WithTimeout(c.Request().Context(), cfg.Timeout)
		defer cancel()

		for _, name := range cfg.Checks {
			checkStart := time.Now()
			count, err := h.runCheck(ctx, name)
			elapsed := time.Since(checkStart)

			if err != nil {
				isHealthy = false
				checks[name] = map[string]interface{}{
					"status":        "unhealthy",
					"response_time": elapsed.String(),
					"error":         err.Error(),
				}

				logger.Error().
					Err(err).
					Str("check", name).
					Dur("response_time", elapsed).
					Msg("health check failed")

				if app := h.server.LoggerService.GetApplication(); app != nil {
					app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
						"check_type":       name,
						"operation":        "health_check",
						"error_type":       name + "_unhealthy",
						"response_time_ms": elapsed.Milliseconds(),
						"error_message":    err.Error(),
					})
				}
				continue
			}

			checks[name] = map[string]interface{}{
				"status":        "healthy",
				"response_time": elapsed.String(),
				"records":       count,
			}

			logger.Debug().
				Str("check", name).
				Int("records", count).
				Dur("response_time", elapsed).
				Msg("health check passed")
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}
	return nil
}

func (h *HealthHandler) runCheck(ctx context.Context, name string) (int, error) {
	check, ok := h.checks[name]
	if !ok {
		return 0, fmt.Errorf("unknown health check %q", name)
	}
	return check(ctx)
}
