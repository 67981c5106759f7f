// Package errs defines the error shape every API client receives.
//
// Handlers and middleware return *HTTPError values (or errors that the
// global error handler converts into one), so a failed request always
// answers with the same JSON structure: a machine-readable code, a
// human-readable message, the HTTP status and optional field errors.
package errs
