package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/deppfellow/people-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves, usually by calling Struct on their own value.
type Validatable interface {
	Validate() error
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Struct validates s against its `validate` tags using a shared validator.
//
// Field names in the resulting errors are taken from the `json` tag so they
// match what the client sent.
func Struct(s any) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				name = strings.SplitN(field.Tag.Get("param"), ",", 2)[0]
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
	return validate.Struct(s)
}

// BindAndValidate binds request data into payload and validates it.
//
//  1. c.Bind(payload) populates the struct from path params and body.
//  2. payload.Validate() applies validation rules.
//
// Both failures are returned as a 400 *errs.HTTPError. payload must be a
// pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors)
	}

	return nil
}

// bindError turns an Echo binder error into a 400. Echo reports unsupported
// media types with their own status, which is kept.
func bindError(err error) error {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code != http.StatusBadRequest {
			return echoErr
		}
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return errs.NewBadRequestError(bindMessage(msg), false, nil, nil)
		}
	}
	return errs.NewBadRequestError("Invalid request payload", false, nil, nil)
}

// bindMessage keeps the part of Echo's bind error that is useful to a client.
//
//	"code=400, message=Syntax error: offset=12, error=..." -> "Syntax error: offset=12, error=..."
func bindMessage(msg string) string {
	if _, after, ok := strings.Cut(msg, "message="); ok {
		return after
	}
	return msg
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return "Validation failed", []errs.FieldError{{Field: "", Error: err.Error()}}
	}

	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		var msg string

		switch fe.Tag() {
		case "required":
			msg = "is required"

		case "min", "gte":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fe.Param())
			}

		case "max", "lte":
			if fe.Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fe.Param())
			}

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", fe.Param())

		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, fe.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
