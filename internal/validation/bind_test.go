package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/filmorate/internal/errs"
	"github.com/deppfellow/filmorate/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBindContext(body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/films", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBind_DecodesPayload(t *testing.T) {
	c := newBindContext(`{"name":"Film","releaseDate":"2000-01-01","duration":90}`)

	var f model.Film
	require.NoError(t, Bind(c, &f))
	assert.Equal(t, "Film", f.Name)
	assert.Equal(t, 90, f.Duration)
	assert.Equal(t, "2000-01-01", f.ReleaseDate.String())
}

func TestBind_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"name":`},
		{name: "wrong field type", body: `{"duration":"long"}`},
		{name: "bad date", body: `{"releaseDate":"01.01.2000"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f model.Film
			err := Bind(newBindContext(tt.body), &f)
			require.Error(t, err)

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, http.StatusBadRequest, httpErr.Status)
			assert.NotEmpty(t, httpErr.Message)
		})
	}
}

func TestBind_TypeErrorNamesField(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
		wantMsg   string
	}{
		{
			name:      "string duration",
			body:      `{"duration":"long"}`,
			wantField: "duration",
			wantMsg:   "Duration must be of type int",
		},
		{
			name:      "numeric name",
			body:      `{"name":42}`,
			wantField: "name",
			wantMsg:   "Name must be of type string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f model.Film
			err := Bind(newBindContext(tt.body), &f)

			var httpErr *errs.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, "BAD_REQUEST", httpErr.Code)
			assert.Equal(t, "Invalid request body: "+tt.wantMsg, httpErr.Message)
			require.Len(t, httpErr.Errors, 1)
			assert.Equal(t, tt.wantField, httpErr.Errors[0].Field)
			assert.Equal(t, tt.wantMsg, httpErr.Errors[0].Error)
		})
	}
}
