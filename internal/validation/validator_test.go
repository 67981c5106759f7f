package validation

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/filmorate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

func newTestValidator() *Validator {
	return New(func() time.Time { return fixedNow })
}

func validFilm() model.Film {
	return model.Film{
		Name:        "Film",
		Description: "Description",
		ReleaseDate: model.NewDate(2000, time.January, 1),
		Duration:    120,
	}
}

func validUser() model.User {
	return model.User{
		Email:    "bob@example.com",
		Login:    "bob",
		Name:     "Bob",
		Birthday: model.NewDate(1990, time.May, 20),
	}
}

func TestValidator_Film(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *model.Film)
		wantErr *model.Error
		message string
	}{
		{name: "valid film", mutate: func(f *model.Film) {}},
		{name: "empty description", mutate: func(f *model.Film) { f.Description = "" }},
		{name: "description of exactly 200 characters", mutate: func(f *model.Film) { f.Description = strings.Repeat("x", 200) }},
		{name: "200 multibyte characters", mutate: func(f *model.Film) { f.Description = strings.Repeat("ф", 200) }},
		{name: "release date on cinema birthday", mutate: func(f *model.Film) { f.ReleaseDate = model.CinemaBirthday() }},
		{name: "duration of one minute", mutate: func(f *model.Film) { f.Duration = 1 }},
		{
			name:    "empty name",
			mutate:  func(f *model.Film) { f.Name = "" },
			wantErr: model.ErrEmptyName,
			message: "name must not be empty",
		},
		{
			name:    "blank name",
			mutate:  func(f *model.Film) { f.Name = " \t " },
			wantErr: model.ErrEmptyName,
		},
		{
			name:    "description of 201 characters",
			mutate:  func(f *model.Film) { f.Description = strings.Repeat("x", 201) },
			wantErr: model.ErrDescriptionTooLong,
			message: "description must not exceed 200 characters",
		},
		{
			name:    "missing release date",
			mutate:  func(f *model.Film) { f.ReleaseDate = model.Date{} },
			wantErr: model.ErrReleaseDateTooEarly,
			message: "release date must be provided",
		},
		{
			name:    "release date in year one",
			mutate:  func(f *model.Film) { f.ReleaseDate = model.NewDate(1, time.January, 1) },
			wantErr: model.ErrReleaseDateTooEarly,
			message: "release date must not be earlier than 1895-12-28",
		},
		{
			name:    "release date one day before cinema birthday",
			mutate:  func(f *model.Film) { f.ReleaseDate = addDays(model.CinemaBirthday(), -1) },
			wantErr: model.ErrReleaseDateTooEarly,
			message: "release date must not be earlier than 1895-12-28",
		},
		{
			name:    "zero duration",
			mutate:  func(f *model.Film) { f.Duration = 0 },
			wantErr: model.ErrInvalidDuration,
		},
		{
			name:    "negative duration",
			mutate:  func(f *model.Film) { f.Duration = -10 },
			wantErr: model.ErrInvalidDuration,
		},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFilm()
			tt.mutate(&f)

			err := v.Film(f)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var domainErr *model.Error
			require.True(t, errors.As(err, &domainErr))
			assert.Equal(t, model.ResourceFilm, domainErr.Resource)
			if tt.message != "" {
				assert.Equal(t, tt.message, domainErr.Message)
			}
		})
	}
}

func TestValidator_FilmFirstViolationWins(t *testing.T) {
	f := model.Film{
		Name:        "",
		Description: strings.Repeat("x", 500),
		ReleaseDate: model.NewDate(1800, time.January, 1),
		Duration:    0,
	}

	err := newTestValidator().Film(f)
	assert.ErrorIs(t, err, model.ErrEmptyName)

	f.Name = "Film"
	err = newTestValidator().Film(f)
	assert.ErrorIs(t, err, model.ErrDescriptionTooLong)

	f.Description = ""
	err = newTestValidator().Film(f)
	assert.ErrorIs(t, err, model.ErrReleaseDateTooEarly)
}

func TestValidator_User(t *testing.T) {
	today := model.DateOf(fixedNow)

	tests := []struct {
		name    string
		mutate  func(u *model.User)
		wantErr *model.Error
		message string
	}{
		{name: "valid user", mutate: func(u *model.User) {}},
		{name: "blank name is not a violation", mutate: func(u *model.User) { u.Name = "" }},
		{name: "missing birthday", mutate: func(u *model.User) { u.Birthday = model.Date{} }},
		{name: "birthday today", mutate: func(u *model.User) { u.Birthday = today }},
		{
			name:    "missing email",
			mutate:  func(u *model.User) { u.Email = "" },
			wantErr: model.ErrInvalidEmail,
			message: "email must be provided",
		},
		{
			name:    "blank email",
			mutate:  func(u *model.User) { u.Email = "   " },
			wantErr: model.ErrInvalidEmail,
			message: "email must be provided",
		},
		{
			name:    "email without at sign",
			mutate:  func(u *model.User) { u.Email = "bob.example.com" },
			wantErr: model.ErrInvalidEmail,
			message: "email must contain '@'",
		},
		{
			name:    "missing login",
			mutate:  func(u *model.User) { u.Login = "" },
			wantErr: model.ErrInvalidLogin,
			message: "login must not be empty",
		},
		{
			name:    "login with space",
			mutate:  func(u *model.User) { u.Login = "bob smith" },
			wantErr: model.ErrInvalidLogin,
			message: "login must not contain whitespace",
		},
		{
			name:    "login with tab",
			mutate:  func(u *model.User) { u.Login = "bob\tsmith" },
			wantErr: model.ErrInvalidLogin,
		},
		{
			name:    "birthday tomorrow",
			mutate:  func(u *model.User) { u.Birthday = addDays(today, 1) },
			wantErr: model.ErrFutureBirthday,
			message: "birthday must not be in the future",
		},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)

			err := v.User(u)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			var domainErr *model.Error
			require.True(t, errors.As(err, &domainErr))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, model.ResourceUser, domainErr.Resource)
			if tt.message != "" {
				assert.Equal(t, tt.message, domainErr.Message)
			}
		})
	}
}

func TestValidator_UserDoesNotDefaultName(t *testing.T) {
	u := validUser()
	u.Name = ""

	require.NoError(t, newTestValidator().User(u))
	assert.Empty(t, u.Name)
}

func TestNew_NilClockUsesWallTime(t *testing.T) {
	v := New(nil)
	u := validUser()
	u.Birthday = model.DateOf(time.Now().UTC().AddDate(0, 0, 2))

	assert.ErrorIs(t, v.User(u), model.ErrFutureBirthday)
}

func addDays(d model.Date, n int) model.Date {
	return model.DateOf(d.AddDate(0, 0, n))
}
