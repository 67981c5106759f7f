package middleware

import (
	"fmt"
	"math"
	"time"

	"github.com/deppfellow/filmorate/internal/errs"
	"github.com/deppfellow/filmorate/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const rateLimitVisitorTTL = 3 * time.Minute

// RateLimitMiddleware enforces the per-client request rate and reports
// every denied request.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limit returns a token bucket limiter keyed by client IP. It is a no-op
// when server.rate_limit is zero. Skipped paths are never limited.
func (r *RateLimitMiddleware) Limit(skipPaths ...string) echo.MiddlewareFunc {
	cfg := r.server.Config.Server
	if !cfg.RateLimitEnabled() {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	burst := cfg.RateBurst
	if burst < 1 {
		burst = int(math.Ceil(cfg.RateLimit))
	}

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RateLimit),
		Burst:     burst,
		ExpiresIn: rateLimitVisitorTTL,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: func(c echo.Context) bool {
			_, ok := skip[c.Path()]
			return ok
		},
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewBadRequestError("Could not identify client", false, nil, nil, nil)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c, identifier)
			return errs.NewTooManyRequestsError("Too many requests", retryAfter(cfg.RateLimit))
		},
	})
}

// RecordRateLimitHit logs a denied request and sends a RateLimitHit event
// to New Relic when it is enabled.
func (r *RateLimitMiddleware) RecordRateLimitHit(c echo.Context, identifier string) {
	GetLogger(c).Warn().
		Str("client", identifier).
		Str("endpoint", c.Path()).
		Msg("rate limit exceeded")

	if app := r.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": c.Path(),
			"method":   c.Request().Method,
		})
	}
}

// retryAfter is the time one token takes to refill.
func retryAfter(perSecond float64) string {
	wait := time.Duration(float64(time.Second) / perSecond)
	return fmt.Sprintf("%ds", int(math.Ceil(wait.Seconds())))
}
