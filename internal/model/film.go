package model

import "time"

// DescriptionMaxLength is the longest film description accepted, in characters.
const DescriptionMaxLength = 200

// CinemaBirthday returns the earliest release date a film may have:
// the first public screening by the Lumière brothers.
func CinemaBirthday() Date {
	return NewDate(1895, time.December, 28)
}

// Film is a catalog film. Duration is in minutes.
type Film struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ReleaseDate Date   `json:"releaseDate"`
	Duration    int    `json:"duration"`
}

// Identifier returns the film id, zero when unassigned.
func (f Film) Identifier() int64 {
	return f.ID
}

// WithIdentifier returns a copy of f carrying id.
func (f Film) WithIdentifier(id int64) Film {
	f.ID = id
	return f
}
