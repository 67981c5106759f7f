// Package handler is the first layer after the router.
//
// It decodes requests, calls the matching service and writes the result.
// Errors are returned untouched so the global error handler can shape
// the response.
package handler
