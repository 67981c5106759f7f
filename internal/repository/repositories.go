package repository

import (
	"github.com/deppfellow/filmorate/internal/model"
	"github.com/deppfellow/filmorate/internal/validation"
)

// Repositories groups the registries of every catalog resource.
type Repositories struct {
	Films *Registry[model.Film]
	Users *Registry[model.User]
}

// NewRepositories builds fresh, empty registries wired to v's rules.
func NewRepositories(v *validation.Validator) *Repositories {
	return &Repositories{
		Films: NewFilmRegistry(v),
		Users: NewUserRegistry(v),
	}
}

// NewFilmRegistry returns an empty film registry.
func NewFilmRegistry(v *validation.Validator) *Registry[model.Film] {
	return NewRegistry[model.Film](model.ResourceFilm, v.Film, nil)
}

// NewUserRegistry returns an empty user registry. Stored users always
// carry a name: a blank name is replaced by the login on create and
// on every update.
func NewUserRegistry(v *validation.Validator) *Registry[model.User] {
	return NewRegistry[model.User](model.ResourceUser, v.User, model.User.WithDefaultName)
}
