package validation

import (
	"fmt"

	"github.com/deppfellow/filmorate/internal/model"
)

func filmRules() []Rule[model.Film] {
	return []Rule[model.Film]{
		{
			Field:   "name",
			Tag:     tagNotBlank,
			Kind:    model.KindEmptyName,
			Message: "name must not be empty",
			Value:   func(f model.Film) any { return f.Name },
		},
		{
			Field:   "description",
			Tag:     fmt.Sprintf("max=%d", model.DescriptionMaxLength),
			Kind:    model.KindDescriptionTooLong,
			Message: fmt.Sprintf("description must not exceed %d characters", model.DescriptionMaxLength),
			Value:   func(f model.Film) any { return f.Description },
		},
		{
			Field:   "releaseDate",
			Tag:     "required",
			Kind:    model.KindReleaseDateTooEarly,
			Message: "release date must be provided",
			Value:   func(f model.Film) any { return !f.ReleaseDate.IsZero() },
		},
		{
			Field:   "releaseDate",
			Tag:     tagCinema,
			Kind:    model.KindReleaseDateTooEarly,
			Message: "release date must not be earlier than " + model.CinemaBirthday().String(),
			Value:   func(f model.Film) any { return f.ReleaseDate.Time },
		},
		{
			Field:   "duration",
			Tag:     "gt=0",
			Kind:    model.KindInvalidDuration,
			Message: "duration must be a positive number of minutes",
			Value:   func(f model.Film) any { return f.Duration },
		},
	}
}
