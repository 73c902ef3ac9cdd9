// Package handler is the HTTP layer that sits right after the router.
//
// It binds and validates requests with the validation package, calls the
// service layer and writes the response. Errors are turned into
// *errs.HTTPError here or by the global error handler.
package handler
