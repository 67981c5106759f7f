package handler

import (
	"github.com/deppfellow/filmorate/internal/model"
	"github.com/deppfellow/filmorate/internal/server"
	"github.com/deppfellow/filmorate/internal/service"
	"github.com/labstack/echo/v4"
)

// UserHandler serves the /users endpoints.
type UserHandler struct {
	Handler
	users *service.CatalogService[model.User]
}

func NewUserHandler(s *server.Server, users *service.CatalogService[model.User]) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   users,
	}
}

func (h *UserHandler) ListUsers(c echo.Context, _ *NoBody) ([]model.User, error) {
	return h.users.List(c.Request().Context()), nil
}

// CreateUser stores a new user, defaulting a blank name to the login.
func (h *UserHandler) CreateUser(c echo.Context, req *model.User) (model.User, error) {
	return h.users.Create(c.Request().Context(), *req)
}

// UpdateUser replaces the user whose id is in the body.
func (h *UserHandler) UpdateUser(c echo.Context, req *model.User) (model.User, error) {
	return h.users.Update(c.Request().Context(), *req)
}
