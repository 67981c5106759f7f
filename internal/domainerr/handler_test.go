package domainerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/filmorate/internal/errs"
	"github.com/deppfellow/filmorate/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleErrorDomainErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  string
		wantMsg   string
		wantField string
	}{
		{
			name:      "film validation",
			err:       model.NewError(model.ResourceFilm, model.KindEmptyName, "name", "name must not be empty"),
			wantCode:  "FILM_EMPTY_NAME",
			wantMsg:   "name must not be empty",
			wantField: "name",
		},
		{
			name:      "user not found",
			err:       model.NewError(model.ResourceUser, model.KindNotFound, "id", "user with id = 9 not found"),
			wantCode:  "USER_NOT_FOUND",
			wantMsg:   "user with id = 9 not found",
			wantField: "id",
		},
		{
			name:      "missing id wrapped",
			err:       fmt.Errorf("update: %w", model.NewError(model.ResourceFilm, model.KindMissingID, "id", "id must be provided")),
			wantCode:  "FILM_ID_REQUIRED",
			wantMsg:   "id must be provided",
			wantField: "id",
		},
		{
			name:     "no resource",
			err:      &model.Error{Kind: model.KindInvalidDuration, Message: "duration must be positive"},
			wantCode: "RECORD_INVALID_DURATION",
			wantMsg:  "duration must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.True(t, errors.As(HandleError(tt.err), &httpErr))

			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.Equal(t, tt.wantCode, httpErr.Code)
			assert.Equal(t, tt.wantMsg, httpErr.Message)
			assert.True(t, httpErr.Override)

			if tt.wantField == "" {
				assert.Empty(t, httpErr.Errors)
				return
			}
			require.Len(t, httpErr.Errors, 1)
			assert.Equal(t, tt.wantField, httpErr.Errors[0].Field)
			assert.Equal(t, tt.wantMsg, httpErr.Errors[0].Error)
		})
	}
}

func TestHandleErrorPassesHTTPErrorThrough(t *testing.T) {
	original := errs.NewNotFoundError("Route not found", false, nil)
	assert.Same(t, original, HandleError(original))
}

func TestHandleErrorUnknownIsInternal(t *testing.T) {
	var httpErr *errs.HTTPError
	require.True(t, errors.As(HandleError(errors.New("boom")), &httpErr))

	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", httpErr.Code)
	assert.NotContains(t, httpErr.Message, "boom")
}
