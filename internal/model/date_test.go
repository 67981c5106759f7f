package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	in := Film{Name: "Film", ReleaseDate: NewDate(2000, time.January, 2), Duration: 90}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"releaseDate":"2000-01-02"`)

	var out Film
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestDate_ZeroMarshalsToNull(t *testing.T) {
	data, err := json.Marshal(User{Login: "bob"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"birthday":null`)
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "valid date", input: `"1895-12-28"`, want: NewDate(1895, time.December, 28)},
		{name: "year one is present", input: `"0001-01-01"`, want: NewDate(1, time.January, 1)},
		{name: "null", input: `null`, want: Date{}},
		{name: "empty string", input: `""`, want: Date{}},
		{name: "wrong layout", input: `"28.12.1895"`, wantErr: true},
		{name: "not a string", input: `18951228`, wantErr: true},
		{name: "impossible day", input: `"2001-02-30"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestDate_Comparisons(t *testing.T) {
	d := CinemaBirthday()

	assert.True(t, NewDate(1895, time.December, 27).Before(d))
	assert.True(t, NewDate(1895, time.December, 29).After(d))
	assert.False(t, d.Before(d))
	assert.False(t, d.After(d))
}

func TestDate_YearOneRoundTrip(t *testing.T) {
	in := User{Email: "a@b.c", Login: "x", Birthday: NewDate(1, time.January, 1)}
	assert.False(t, in.Birthday.IsZero())

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"birthday":"0001-01-01"`)

	var out User
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
	assert.False(t, out.Birthday.IsZero())
}

func TestDate_AbsentIsZero(t *testing.T) {
	var d Date
	assert.True(t, d.IsZero())
	assert.Equal(t, "", d.String())

	require.NoError(t, d.UnmarshalJSON([]byte(`null`)))
	assert.True(t, d.IsZero())
}

func TestDateOf_DropsTimeOfDay(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, NewDate(2024, time.March, 5), DateOf(ts))
	assert.Equal(t, "2024-03-05", DateOf(ts).String())
}
