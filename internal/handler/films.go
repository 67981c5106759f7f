package handler

import (
	"github.com/deppfellow/filmorate/internal/model"
	"github.com/deppfellow/filmorate/internal/server"
	"github.com/deppfellow/filmorate/internal/service"
	"github.com/labstack/echo/v4"
)

// FilmHandler serves the /films endpoints.
type FilmHandler struct {
	Handler
	films *service.CatalogService[model.Film]
}

func NewFilmHandler(s *server.Server, films *service.CatalogService[model.Film]) *FilmHandler {
	return &FilmHandler{
		Handler: NewHandler(s),
		films:   films,
	}
}

// ListFilms returns every stored film in insertion order.
func (h *FilmHandler) ListFilms(c echo.Context, _ *NoBody) ([]model.Film, error) {
	return h.films.List(c.Request().Context()), nil
}

// CreateFilm stores a new film. Any id in the body is ignored.
func (h *FilmHandler) CreateFilm(c echo.Context, req *model.Film) (model.Film, error) {
	return h.films.Create(c.Request().Context(), *req)
}

// UpdateFilm replaces the film whose id is in the body.
func (h *FilmHandler) UpdateFilm(c echo.Context, req *model.Film) (model.Film, error) {
	return h.films.Update(c.Request().Context(), *req)
}
