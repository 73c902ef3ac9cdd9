// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated data from the handler, scopes a pooled database connection
// to each operation and calls repository methods on it.
package service
