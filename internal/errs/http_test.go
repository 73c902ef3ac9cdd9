package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Check(t, is.Equal(MakeUpperCaseWithUnderscores("Bad Request"), "BAD_REQUEST"))
	assert.Check(t, is.Equal(MakeUpperCaseWithUnderscores("Internal Server Error"), "INTERNAL_SERVER_ERROR"))
}

func TestConstructors(t *testing.T) {
	notFound := NewNotFoundError("Person not found", true, nil)
	assert.Check(t, is.Equal(notFound.Status, http.StatusNotFound))
	assert.Check(t, is.Equal(notFound.Code, "NOT_FOUND"))

	code := "PERSON_INVALID"
	badRequest := NewBadRequestError("Validation failed", true, &code, []FieldError{{Field: "age", Error: "must be at least 0"}})
	assert.Check(t, is.Equal(badRequest.Status, http.StatusBadRequest))
	assert.Check(t, is.Equal(badRequest.Code, "PERSON_INVALID"))
	assert.Check(t, is.Len(badRequest.Errors, 1))

	internal := NewInternalServerError()
	assert.Check(t, is.Equal(internal.Status, http.StatusInternalServerError))
	assert.Check(t, is.Equal(internal.Message, "Internal Server Error"))
	assert.Check(t, !internal.Override)
}

func TestWithCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.7:5432: connect: connection refused")
	internal := NewInternalServerError()
	withCause := internal.WithCause(cause)

	assert.Check(t, errors.Is(withCause, cause))
	assert.Check(t, is.ErrorContains(withCause, "connection refused"))
	assert.Check(t, is.Equal(withCause.Message, "Internal Server Error"))
	assert.Check(t, internal.Unwrap() == nil)

	body, err := json.Marshal(withCause)
	assert.NilError(t, err)
	assert.Check(t, !strings.Contains(string(body), "connection refused"), string(body))

	var httpErr *HTTPError
	assert.Assert(t, errors.As(fmt.Errorf("list people: %w", withCause), &httpErr))
	assert.Check(t, is.Equal(httpErr.Status, http.StatusInternalServerError))
}
