package errs

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldError points a client at the offending input field.
//
//	{ "field": "email", "error": "email must contain '@'" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ActionType is a string-based enum describing what the client should do next.
type ActionType string

const (
	// ActionTypeRetry tells the client the request may succeed if repeated later.
	// Value holds the suggested delay.
	ActionTypeRetry ActionType = "retry"
)

// Action is an optional hint for the client attached to an error.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the error type written to API responses.
//
//   - Code: machine-friendly error code (e.g. "BAD_REQUEST", "FILM_EMPTY_NAME").
//   - Message: human-friendly message.
//   - Status: HTTP status code.
//   - Override: the message is meant to be shown to end users as is.
//   - Errors: per-field errors.
//   - Action: optional client instruction.
type HTTPError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Override bool   `json:"override"`

	Errors []FieldError `json:"errors"`

	Action *Action `json:"action"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. It does not compare
// codes or statuses; use errors.As for that.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// MakeUpperCaseWithUnderscores converts "Bad Request" into "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return cases.Upper(language.English).String(strings.ReplaceAll(str, " ", "_"))
}

// HumanizeText converts camelCase or snake_case identifiers into Title Case.
//
//	"releaseDate" -> "Release Date"
func HumanizeText(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	for i, r := range text {
		switch {
		case r == '_':
			b.WriteRune(' ')
			continue
		case i > 0 && unicode.IsUpper(r):
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}

	return cases.Title(language.English).String(b.String())
}
