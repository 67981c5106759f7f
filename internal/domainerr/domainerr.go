// Package domainerr translates catalog domain errors into client-facing
// HTTP errors.
//
// Validators and registries speak in *model.Error values; this package
// gives each of them a stable machine-readable code and the status the
// API promises for it.
package domainerr
