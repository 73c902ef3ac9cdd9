// Package errs defines the error shape returned to API clients.
//
// Every error that leaves the service is rendered from an HTTPError so
// clients always receive the same JSON structure, with optional
// field-level details for validation failures.
package errs
