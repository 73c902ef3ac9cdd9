package validation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/people-api/internal/errs"
	"github.com/labstack/echo/v4"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

type payload struct {
	Name  string `json:"name" validate:"required"`
	Count int    `json:"count" validate:"min=1,max=10"`
}

func (p *payload) Validate() error {
	return Struct(p)
}

type brokenPayload struct{}

func (p *brokenPayload) Validate() error {
	return errors.New("window must end after it starts")
}

func newContext(method, body string) echo.Context {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	assert.Assert(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %v", err)
	return httpErr
}

func TestBindAndValidateOK(t *testing.T) {
	p := &payload{}
	err := BindAndValidate(newContext(http.MethodPost, `{"name":"ada","count":3}`), p)

	assert.NilError(t, err)
	assert.Check(t, is.Equal(p.Name, "ada"))
	assert.Check(t, is.Equal(p.Count, 3))
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, `{"name":`), &payload{})

	httpErr := asHTTPError(t, err)
	assert.Check(t, is.Equal(httpErr.Status, http.StatusBadRequest))
	assert.Check(t, httpErr.Message != "")
}

func TestBindAndValidateWrongType(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, `{"name":"ada","count":"three"}`), &payload{})

	httpErr := asHTTPError(t, err)
	assert.Check(t, is.Equal(httpErr.Status, http.StatusBadRequest))
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, `{"count":11}`), &payload{})

	httpErr := asHTTPError(t, err)
	assert.Check(t, is.Equal(httpErr.Status, http.StatusBadRequest))
	assert.Check(t, is.Equal(httpErr.Message, "Validation failed"))
	assert.Check(t, is.DeepEqual(httpErr.Errors, []errs.FieldError{
		{Field: "name", Error: "is required"},
		{Field: "count", Error: "must not exceed 10"},
	}))
}

func TestBindAndValidatePlainError(t *testing.T) {
	err := BindAndValidate(newContext(http.MethodPost, `{}`), &brokenPayload{})

	httpErr := asHTTPError(t, err)
	assert.Check(t, is.Equal(httpErr.Status, http.StatusBadRequest))
	assert.Check(t, is.DeepEqual(httpErr.Errors, []errs.FieldError{
		{Field: "", Error: "window must end after it starts"},
	}))
}

func TestBindMessage(t *testing.T) {
	assert.Check(t, is.Equal(bindMessage("code=400, message=Syntax error"), "Syntax error"))
	assert.Check(t, is.Equal(bindMessage("Syntax error"), "Syntax error"))
}
