package repository

import "go.uber.org/atomic"

// Sequence hands out strictly increasing positive identifiers, starting at 1.
// An identifier is never handed out twice.
type Sequence struct {
	last *atomic.Int64
}

// NewSequence returns a sequence whose first identifier is 1.
func NewSequence() *Sequence {
	return &Sequence{last: atomic.NewInt64(0)}
}

// Next returns the next identifier.
func (s *Sequence) Next() int64 {
	return s.last.Inc()
}
