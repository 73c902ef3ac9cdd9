package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "first_name", "error": "is required" }
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the `error` interface and is serialized directly to JSON.
//   - Code: machine-friendly error code (e.g. "NOT_FOUND").
//   - Message: human-friendly message. Never carries internal error text.
//   - Status: HTTP status code.
//   - Override: the message is safe to show to end users as-is.
//   - Errors: list of per-field errors (validation).
//
// An HTTPError built from another error keeps it as its cause for logging.
type HTTPError struct {
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Status   int          `json:"status"`
	Override bool         `json:"override"`
	Errors   []FieldError `json:"errors,omitempty"`

	cause error
}

// Error includes the cause, if any, so log lines carry it. The JSON body
// never does: cause is unexported.
func (e *HTTPError) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.cause
}

// WithCause returns a copy of e that records the error it was derived from.
func (e *HTTPError) WithCause(cause error) *HTTPError {
	c := *e
	c.cause = cause
	return &c
}

// MakeUpperCaseWithUnderscores converts a string into UPPER_CASE_WITH_UNDERSCORES.
//
//	"Bad Request" -> "BAD_REQUEST"
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
