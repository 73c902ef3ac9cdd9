// Package sqlerr specifically handles database driver errors.
//
// It parses error codes from the database driver and converts them
// into the two outcomes the API exposes: a "not found" error (404)
// or an opaque internal error (500). Postgres error metadata is kept
// for logging only.
package sqlerr
