// Package validation contains the catalog rules for films and users
// and the helper that binds request payloads.
//
// Rules are expressed as go-playground/validator tags and evaluated one
// at a time, in a fixed order. The first rule that fails is reported as
// a typed model.Error; the remaining rules are not evaluated.
package validation
