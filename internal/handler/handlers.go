package handler

import (
	"github.com/deppfellow/filmorate/internal/server"
	"github.com/deppfellow/filmorate/internal/service"
)

// Handlers groups all HTTP handlers so the router receives one value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Films   *FilmHandler
	Users   *UserHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s, services),
		OpenAPI: NewOpenAPIHandler(s, DefaultStaticDir),
		Films:   NewFilmHandler(s, services.Films),
		Users:   NewUserHandler(s, services.Users),
	}
}
