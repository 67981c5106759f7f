package router

import (
	"net/http"

	"github.com/deppfellow/filmorate/internal/handler"
	"github.com/deppfellow/filmorate/internal/model"
	"github.com/labstack/echo/v4"
)

// registerCatalogRoutes registers the film and user endpoints. Every
// success answers 200 with the stored record or list.
func registerCatalogRoutes(r *echo.Echo, h *handler.Handlers) {
	films := r.Group("/films")
	films.GET("", handler.Handle[handler.NoBody, []model.Film](h.Films.Handler, h.Films.ListFilms, http.StatusOK))
	films.POST("", handler.Handle[model.Film, model.Film](h.Films.Handler, h.Films.CreateFilm, http.StatusOK))
	films.PUT("", handler.Handle[model.Film, model.Film](h.Films.Handler, h.Films.UpdateFilm, http.StatusOK))

	users := r.Group("/users")
	users.GET("", handler.Handle[handler.NoBody, []model.User](h.Users.Handler, h.Users.ListUsers, http.StatusOK))
	users.POST("", handler.Handle[model.User, model.User](h.Users.Handler, h.Users.CreateUser, http.StatusOK))
	users.PUT("", handler.Handle[model.User, model.User](h.Users.Handler, h.Users.UpdateUser, http.StatusOK))
}
