package service

import (
	"github.com/deppfellow/filmorate/internal/model"
	"github.com/deppfellow/filmorate/internal/repository"
	"github.com/deppfellow/filmorate/internal/server"
)

// Services groups the business services handed to the HTTP layer.
type Services struct {
	Films *CatalogService[model.Film]
	Users *CatalogService[model.User]
}

// NewServices wires a service around every repository.
func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Films: NewCatalogService(repos.Films, s.Metrics),
		Users: NewCatalogService(repos.Users, s.Metrics),
	}
}
