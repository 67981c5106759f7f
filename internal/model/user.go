package model

import "strings"

// User is a catalog user.
//
// Name is optional on input; the stored record always carries a
// non-blank name (see WithDefaultName).
type User struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	Birthday Date   `json:"birthday"`
}

// Identifier returns the user id, zero when unassigned.
func (u User) Identifier() int64 {
	return u.ID
}

// WithIdentifier returns a copy of u carrying id.
func (u User) WithIdentifier(id int64) User {
	u.ID = id
	return u
}

// WithDefaultName returns a copy of u whose name falls back to the
// login when it is blank. The fallback is always the login of u
// itself, never a previously stored name.
func (u User) WithDefaultName() User {
	if strings.TrimSpace(u.Name) == "" {
		u.Name = u.Login
	}
	return u
}
