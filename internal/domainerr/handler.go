package domainerr

import (
	"errors"
	"fmt"

	"github.com/deppfellow/filmorate/internal/errs"
	"github.com/deppfellow/filmorate/internal/model"
)

// generateErrorCode builds the <RESOURCE>_<KIND> application code, for
// example FILM_EMPTY_NAME or USER_NOT_FOUND.
func generateErrorCode(resource string, kind model.ErrorKind) string {
	if resource == "" {
		resource = "RECORD"
	}

	action := string(kind)
	if action == "" {
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", errs.MakeUpperCaseWithUnderscores(resource), action)
}

// HandleError converts an error returned by the service layer into an
// *errs.HTTPError.
//
//   - *errs.HTTPError is returned unchanged.
//   - *model.Error becomes a 400 carrying the domain message, a
//     <RESOURCE>_<KIND> code and the offending field.
//   - Anything else becomes a 500 without details.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var domainErr *model.Error
	if errors.As(err, &domainErr) {
		errorCode := generateErrorCode(domainErr.Resource, domainErr.Kind)
		userMessage := domainErr.Message

		var fieldErrors []errs.FieldError
		if domainErr.Field != "" {
			fieldErrors = []errs.FieldError{
				{
					Field: domainErr.Field,
					Error: userMessage,
				},
			}
		}

		return errs.NewBadRequestError(userMessage, true, &errorCode, fieldErrors, nil)
	}

	return errs.NewInternalServerError()
}
