package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/people-api/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Describe returns a structured view of the Postgres error in err's chain,
// or nil if err did not come from the server.
func Describe(err error) *Error {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		return ConvertPgError(pgerr)
	}

	return nil
}

// IsNotFound reports whether err means no row matched.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}

// LogCode builds a machine-friendly "<DOMAIN>_<ACTION>" code for log lines,
// e.g. people + UniqueViolation => PERSON_ALREADY_EXISTS.
func LogCode(sqlErr *Error) string {
	domain := strings.ToUpper(strings.ReplaceAll(singular(sqlErr.TableName), " ", "_"))
	if domain == "" {
		domain = "RECORD"
	}

	action := "ERROR"
	switch sqlErr.Code {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// singular is a crude singularization for table names.
func singular(tableName string) string {
	name := strings.ToLower(tableName)
	switch {
	case name == "":
		return ""
	case name == "people":
		return "person"
	case strings.HasSuffix(name, "s") && len(name) > 1:
		return name[:len(name)-1]
	default:
		return name
	}
}

// humanizeText converts snake_case into Title Case: "first_name" -> "First Name".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// HandleError converts a storage outcome into the error returned to the
// client. It is the one place that decides status codes for database
// errors:
//
//   - *errs.HTTPError: returned unchanged
//   - pgx.ErrNoRows / sql.ErrNoRows: 404 "<Entity> not found"
//   - anything else (server errors, connection loss, closed pool...): 500
//
// entity names the resource in the 404 message; empty means "Resource".
// The original error stays reachable through errors.Unwrap for logging, but
// no driver text ever reaches the response body.
func HandleError(err error, entity string) error {
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	if IsNotFound(err) {
		if entity == "" {
			return errs.NewNotFoundError("Resource not found", false, nil).WithCause(err)
		}
		return errs.NewNotFoundError(fmt.Sprintf("%s not found", humanizeText(entity)), true, nil).WithCause(err)
	}

	return errs.NewInternalServerError().WithCause(err)
}
