package sqlerr

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/people-api/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	assert.Assert(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr
}

func TestHandleErrorNotFound(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		entity  string
		message string
	}{
		{"pgx no rows", fmt.Errorf("get person 7: %w", pgx.ErrNoRows), "person", "Person not found"},
		{"database/sql no rows", sql.ErrNoRows, "person", "Person not found"},
		{"no entity", pgx.ErrNoRows, "", "Resource not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := asHTTPError(t, HandleError(tt.err, tt.entity))
			assert.Check(t, is.Equal(httpErr.Status, http.StatusNotFound))
			assert.Check(t, is.Equal(httpErr.Message, tt.message))
			assert.Check(t, IsNotFound(httpErr))
		})
	}
}

func TestHandleErrorStorageFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"unique violation", &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint \"people_pkey\"", TableName: "people"}},
		{"not null violation", &pgconn.PgError{Code: "23502", Message: "null value in column \"first_name\"", ColumnName: "first_name"}},
		{"connection lost", fmt.Errorf("insert person: %w", errors.New("conn closed"))},
		{"context canceled", context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := asHTTPError(t, HandleError(tt.err, "person"))
			assert.Check(t, is.Equal(httpErr.Status, http.StatusInternalServerError))
			assert.Check(t, is.Equal(httpErr.Message, "Internal Server Error"))
			assert.Check(t, errors.Is(httpErr, tt.err), "cause lost")
		})
	}
}

func TestHandleErrorPassThrough(t *testing.T) {
	original := errs.NewBadRequestError("Validation failed", true, nil, nil)
	assert.Check(t, HandleError(fmt.Errorf("wrapped: %w", original), "person") == error(original))
	assert.Check(t, HandleError(nil, "person") == nil)
}

func TestDescribe(t *testing.T) {
	err := fmt.Errorf("insert person: %w", &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		Message:        "duplicate key",
		TableName:      "people",
		ConstraintName: "people_pkey",
	})

	sqlErr := Describe(err)
	assert.Assert(t, sqlErr != nil)
	assert.Check(t, is.Equal(sqlErr.Code, UniqueViolation))
	assert.Check(t, is.Equal(sqlErr.Severity, SeverityError))
	assert.Check(t, is.Equal(sqlErr.ConstraintName, "people_pkey"))
	assert.Check(t, is.Equal(LogCode(sqlErr), "PERSON_ALREADY_EXISTS"))

	var pgErr *pgconn.PgError
	assert.Check(t, errors.As(sqlErr, &pgErr))

	assert.Check(t, Describe(pgx.ErrNoRows) == nil)
}

func TestMapCode(t *testing.T) {
	assert.Check(t, is.Equal(MapCode("23503"), ForeignKeyViolation))
	assert.Check(t, is.Equal(MapCode("08006"), ConnectionException))
	assert.Check(t, is.Equal(MapCode("53300"), InsufficientResources))
	assert.Check(t, is.Equal(MapCode("XX000"), Other))
	assert.Check(t, is.Equal(MapSeverity("fatal"), SeverityFatal))
	assert.Check(t, is.Equal(MapSeverity("weird"), SeverityError))
}

func TestLogCodeUnknownTable(t *testing.T) {
	assert.Check(t, is.Equal(LogCode(&Error{Code: CheckViolation}), "RECORD_INVALID"))
}
