package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes shared between services and the HTTP boundary. The codes are
// stable identifiers clients key off; messages are free to change.
const (
	CodeNonExistUser       = "NON_EXIST_USER"
	CodeDuplicateEmail     = "DUPLICATE_EMAIL"
	CodeNoQnaContent       = "NO_QNA_CONTENT"
	CodeOrderNotFound      = "ORDER_NOT_FOUND"
	CodeBlueprintNotFound  = "BLUEPRINT_NOT_FOUND"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeBadRequest         = "BAD_REQUEST"
	CodeInternal           = "INTERNAL_ERROR"
)

type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func NotFound(code string, err error) *Error {
	return New(http.StatusNotFound, code, err)
}

func Conflict(code string, err error) *Error {
	return New(http.StatusConflict, code, err)
}

func Unauthorized(code string, err error) *Error {
	return New(http.StatusUnauthorized, code, err)
}

func BadRequest(err error) *Error {
	return New(http.StatusBadRequest, CodeBadRequest, err)
}

// EmptyContent marks a collection read that produced zero rows. The board
// endpoints treat this as a failure rather than an empty success.
func EmptyContent(code string, err error) *Error {
	return New(http.StatusNotFound, code, err)
}

// From extracts an *Error from err's chain, or wraps err as an internal
// error when it carries no API status of its own.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return New(http.StatusInternalServerError, CodeInternal, err)
}

// IsCode reports whether err carries the given API error code.
func IsCode(err error, code string) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}
	return false
}
