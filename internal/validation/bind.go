package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/deppfellow/filmorate/internal/errs"
	"github.com/labstack/echo/v4"
)

// Bind decodes the request into payload.
//
// payload must be a pointer. Decoding failures become a 400
// *errs.HTTPError whose message describes the problem. A value of the
// wrong JSON type also gets a field error naming the field.
func Bind(c echo.Context, payload any) error {
	if err := c.Bind(payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			msg := fmt.Sprintf("%s must be of type %s", errs.HumanizeText(typeErr.Field), typeErr.Type)
			fieldErrors := []errs.FieldError{{Field: typeErr.Field, Error: msg}}
			return errs.NewBadRequestError("Invalid request body: "+msg, true, nil, fieldErrors, nil)
		}
		return errs.NewBadRequestError(bindErrorMessage(err), true, nil, nil, nil)
	}
	return nil
}

func bindErrorMessage(err error) string {
	var echoErr *echo.HTTPError
	if !errors.As(err, &echoErr) {
		return "Invalid request body: " + err.Error()
	}

	// Echo keeps the decoder error in Internal and a generic text in Message.
	if echoErr.Internal != nil {
		var inner *echo.HTTPError
		if errors.As(echoErr.Internal, &inner) && inner.Internal != nil {
			return "Invalid request body: " + inner.Internal.Error()
		}
		return "Invalid request body: " + echoErr.Internal.Error()
	}

	if msg, ok := echoErr.Message.(string); ok && msg != "" {
		return msg
	}
	return fmt.Sprintf("Invalid request body: %s", http.StatusText(echoErr.Code))
}
