package router

import (
	"github.com/deppfellow/filmorate/internal/handler"
	"github.com/deppfellow/filmorate/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not catalog
// operations: health, metrics, docs UI and static docs assets.
func registerSystemRoutes(r *echo.Echo, s *server.Server, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	if s.Metrics != nil {
		r.GET(s.Config.Observability.Metrics.Path, echo.WrapHandler(s.Metrics.Handler()))
	}

	r.Static("/static", h.OpenAPI.StaticDir())
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
