package sqlerr

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code is a coarse classification of a Postgres SQLSTATE.
type Code string

const (
	Other                     Code = "other"
	NotNullViolation          Code = "not_null_violation"
	ForeignKeyViolation       Code = "foreign_key_violation"
	UniqueViolation           Code = "unique_violation"
	CheckViolation            Code = "check_violation"
	ExclusionViolation        Code = "exclusion_violation"
	InvalidTextRepresentation Code = "invalid_text_representation"
	NumericValueOutOfRange    Code = "numeric_value_out_of_range"
	StringDataRightTruncation Code = "string_data_right_truncation"
	UndefinedTable            Code = "undefined_table"
	SerializationFailure      Code = "serialization_failure"
	DeadlockDetected          Code = "deadlock_detected"
	ConnectionException       Code = "connection_exception"
	InsufficientResources     Code = "insufficient_resources"
	QueryCanceled             Code = "query_canceled"
	AdminShutdown             Code = "admin_shutdown"
)

// MapCode maps a SQLSTATE onto a Code.
//
// Exact codes are matched first, then the two-character class.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func MapCode(sqlState string) Code {
	switch sqlState {
	case "23502":
		return NotNullViolation
	case "23503":
		return ForeignKeyViolation
	case "23505":
		return UniqueViolation
	case "23514":
		return CheckViolation
	case "23P01":
		return ExclusionViolation
	case "22P02":
		return InvalidTextRepresentation
	case "22003":
		return NumericValueOutOfRange
	case "22001":
		return StringDataRightTruncation
	case "42P01":
		return UndefinedTable
	case "40001":
		return SerializationFailure
	case "40P01":
		return DeadlockDetected
	case "57014":
		return QueryCanceled
	case "57P01":
		return AdminShutdown
	}

	if len(sqlState) >= 2 {
		switch sqlState[:2] {
		case "08":
			return ConnectionException
		case "53":
			return InsufficientResources
		}
	}

	return Other
}

// Severity is the severity reported by the server.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityFatal   Severity = "FATAL"
	SeverityPanic   Severity = "PANIC"
	SeverityWarning Severity = "WARNING"
	SeverityNotice  Severity = "NOTICE"
	SeverityDebug   Severity = "DEBUG"
	SeverityInfo    Severity = "INFO"
	SeverityLog     Severity = "LOG"
)

// MapSeverity normalizes a server severity string. Unknown values map to
// SeverityError.
func MapSeverity(severity string) Severity {
	switch s := Severity(strings.ToUpper(severity)); s {
	case SeverityError, SeverityFatal, SeverityPanic, SeverityWarning,
		SeverityNotice, SeverityDebug, SeverityInfo, SeverityLog:
		return s
	default:
		return SeverityError
	}
}

// Error is a structured view of a Postgres error.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string
	driverErr      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.DatabaseCode, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// ConvertPgError converts a raw pgconn.PgError into an Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}
