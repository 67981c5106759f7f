// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API routes,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/filmorate/internal/handler"
	"github.com/deppfellow/filmorate/internal/middleware"
	"github.com/deppfellow/filmorate/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with the global middleware chain,
// system routes and catalog routes.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Metrics.Record(),
		middlewares.Global.RequestLogger(),
		middlewares.RateLimit.Limit(systemPaths(s)...),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, s, h)
	registerCatalogRoutes(router, h)

	return router
}

// systemPaths are never rate limited.
func systemPaths(s *server.Server) []string {
	paths := []string{"/status"}
	if s.Metrics != nil {
		paths = append(paths, s.Config.Observability.Metrics.Path)
	}
	return paths
}
