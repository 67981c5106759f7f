package middleware

import (
	"net/http"
	"time"

	"github.com/deppfellow/filmorate/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// unmatchedRoute labels requests that matched no route, keeping the
// route label bounded.
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latencies per route template.
type MetricsMiddleware struct {
	server *server.Server
}

func NewMetricsMiddleware(s *server.Server) *MetricsMiddleware {
	return &MetricsMiddleware{server: s}
}

// Record is a no-op when metrics are disabled.
func (m *MetricsMiddleware) Record() echo.MiddlewareFunc {
	if m.server.Metrics == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = statusFromError(err)
			}

			route := c.Path()
			var echoErr *echo.HTTPError
			if route == "" || errors.As(err, &echoErr) && echoErr.Code == http.StatusNotFound {
				route = unmatchedRoute
			}

			m.server.Metrics.RecordHTTPRequest(c.Request().Method, route, status, time.Since(start))
			return err
		}
	}
}
