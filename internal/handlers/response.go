package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onetool/server/internal/apierr"
)

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope is the uniform response shape: status with either data or error.
type Envelope struct {
	Status string    `json:"status"`
	Data   any       `json:"data,omitempty"`
	Error  *APIError `json:"error,omitempty"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, Envelope{Status: "success", Data: payload})
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, Envelope{Status: "success", Data: payload})
}

// RespondError maps a service error onto the envelope. Errors without an API
// status come out as 500 with a generic code.
func RespondError(c *gin.Context, err error) {
	apiErr := apierr.From(err)
	msg := "unknown error"
	if apiErr.Err != nil {
		msg = apiErr.Err.Error()
	}
	c.JSON(apiErr.Status, Envelope{
		Status: "error",
		Error:  &APIError{Code: apiErr.Code, Message: msg},
	})
}
