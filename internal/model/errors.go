package model

import "fmt"

// ErrorKind identifies which catalog rule a candidate record broke.
type ErrorKind string

const (
	KindEmptyName           ErrorKind = "EMPTY_NAME"
	KindDescriptionTooLong  ErrorKind = "DESCRIPTION_TOO_LONG"
	KindReleaseDateTooEarly ErrorKind = "RELEASE_DATE_TOO_EARLY"
	KindInvalidDuration     ErrorKind = "INVALID_DURATION"

	KindInvalidEmail   ErrorKind = "INVALID_EMAIL"
	KindInvalidLogin   ErrorKind = "INVALID_LOGIN"
	KindFutureBirthday ErrorKind = "FUTURE_BIRTHDAY"

	KindMissingID ErrorKind = "ID_REQUIRED"
	KindNotFound  ErrorKind = "NOT_FOUND"
)

// Resource names used to tag errors and log lines.
const (
	ResourceFilm = "film"
	ResourceUser = "user"
)

// Error is a client-input error raised by a validator or a registry.
//
// Resource and Field are optional context; Kind is what callers
// branch on. Message is safe to show to API clients.
type Error struct {
	Resource string
	Kind     ErrorKind
	Field    string
	Message  string
}

// NewError builds an Error for resource with the given kind.
func NewError(resource string, kind ErrorKind, field, message string) *Error {
	return &Error{
		Resource: resource,
		Kind:     kind,
		Field:    field,
		Message:  message,
	}
}

func (e *Error) Error() string {
	if e.Resource == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Resource, e.Message)
}

// Is matches another *Error of the same kind. A target that names a
// resource only matches errors raised for that resource.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Resource == "" || t.Resource == e.Resource
}

// Sentinels for errors.Is checks. They carry no resource, so they
// match errors of the same kind raised by either registry.
var (
	ErrEmptyName           = &Error{Kind: KindEmptyName, Message: "name must not be empty"}
	ErrDescriptionTooLong  = &Error{Kind: KindDescriptionTooLong, Message: "description is too long"}
	ErrReleaseDateTooEarly = &Error{Kind: KindReleaseDateTooEarly, Message: "release date is too early"}
	ErrInvalidDuration     = &Error{Kind: KindInvalidDuration, Message: "duration must be positive"}

	ErrInvalidEmail   = &Error{Kind: KindInvalidEmail, Message: "invalid email"}
	ErrInvalidLogin   = &Error{Kind: KindInvalidLogin, Message: "invalid login"}
	ErrFutureBirthday = &Error{Kind: KindFutureBirthday, Message: "birthday is in the future"}

	ErrMissingID = &Error{Kind: KindMissingID, Message: "id is required"}
	ErrNotFound  = &Error{Kind: KindNotFound, Message: "not found"}
)
