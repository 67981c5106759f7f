// Package model defines the catalog records (films and users),
// the calendar date type they share, and the typed errors raised
// when a candidate record breaks a catalog rule.
//
// Records are plain values. The repository layer owns the stored
// copies; callers only ever receive copies back.
package model
