package validation

import "github.com/deppfellow/filmorate/internal/model"

func userRules() []Rule[model.User] {
	return []Rule[model.User]{
		{
			Field:   "email",
			Tag:     tagNotBlank,
			Kind:    model.KindInvalidEmail,
			Message: "email must be provided",
			Value:   func(u model.User) any { return u.Email },
		},
		{
			Field:   "email",
			Tag:     "contains=@",
			Kind:    model.KindInvalidEmail,
			Message: "email must contain '@'",
			Value:   func(u model.User) any { return u.Email },
		},
		{
			Field:   "login",
			Tag:     tagNotBlank,
			Kind:    model.KindInvalidLogin,
			Message: "login must not be empty",
			Value:   func(u model.User) any { return u.Login },
		},
		{
			Field:   "login",
			Tag:     tagNoWhitespace,
			Kind:    model.KindInvalidLogin,
			Message: "login must not contain whitespace",
			Value:   func(u model.User) any { return u.Login },
		},
		{
			Field:   "birthday",
			Tag:     "omitempty," + tagNotFuture,
			Kind:    model.KindFutureBirthday,
			Message: "birthday must not be in the future",
			Value:   func(u model.User) any { return u.Birthday.Time },
		},
	}
}
