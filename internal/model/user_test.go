package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_WithDefaultName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{name: "empty name falls back to login", user: User{Login: "bob"}, want: "bob"},
		{name: "blank name falls back to login", user: User{Login: "bob", Name: "   "}, want: "bob"},
		{name: "name kept", user: User{Login: "bob", Name: "Robert"}, want: "Robert"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.WithDefaultName().Name)
		})
	}
}

func TestWithIdentifier_ReturnsCopy(t *testing.T) {
	f := Film{Name: "Film"}
	g := f.WithIdentifier(3)

	assert.Equal(t, int64(0), f.Identifier())
	assert.Equal(t, int64(3), g.Identifier())

	u := User{Login: "bob"}.WithIdentifier(9)
	assert.Equal(t, int64(9), u.Identifier())
}
