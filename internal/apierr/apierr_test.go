package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	notFound := NotFound(CodeNonExistUser, errors.New("no such member"))
	assert.Equal(t, http.StatusNotFound, From(notFound).Status)
	assert.Equal(t, CodeNonExistUser, From(notFound).Code)

	// Errors wrapped by service-layer context keep their status.
	wrapped := fmt.Errorf("Failed to load member: %w", notFound)
	assert.Equal(t, http.StatusNotFound, From(wrapped).Status)
	assert.Equal(t, CodeNonExistUser, From(wrapped).Code)

	// Plain errors collapse to an internal error.
	plain := errors.New("driver exploded")
	assert.Equal(t, http.StatusInternalServerError, From(plain).Status)
	assert.Equal(t, CodeInternal, From(plain).Code)
}

func TestIsCode(t *testing.T) {
	err := Conflict(CodeDuplicateEmail, errors.New("email taken"))
	assert.True(t, IsCode(err, CodeDuplicateEmail))
	assert.False(t, IsCode(err, CodeNonExistUser))

	wrapped := fmt.Errorf("signup: %w", err)
	assert.True(t, IsCode(wrapped, CodeDuplicateEmail))

	assert.False(t, IsCode(errors.New("plain"), CodeDuplicateEmail))
	assert.False(t, IsCode(nil, CodeDuplicateEmail))
}

func TestStatusConstructors(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, Unauthorized(CodeInvalidToken, errors.New("bad token")).Status)
	assert.Equal(t, http.StatusBadRequest, BadRequest(errors.New("bad json")).Status)
	assert.Equal(t, CodeBadRequest, BadRequest(errors.New("bad json")).Code)
	assert.Equal(t, http.StatusNotFound, EmptyContent(CodeNoQnaContent, errors.New("empty board")).Status)
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "boom", New(http.StatusConflict, CodeDuplicateEmail, errors.New("boom")).Error())
	assert.Equal(t, CodeDuplicateEmail, (&Error{Code: CodeDuplicateEmail}).Error())
}
