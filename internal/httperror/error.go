// Package httperror renders errors as JSON response bodies.
package httperror

import (
	"errors"

	"github.com/gin-gonic/gin"
)

// Error is the body of all error responses.
type Error struct {
	Message string `json:"error" example:"Valid ID is required"`
	Code    string `json:"code,omitempty" example:"INVALID_ID"` // Machine-readable error code, if one applies
}

// Coder is implemented by errors that carry a machine-readable code.
type Coder interface {
	ErrorCode() string
}

// New writes err with the given HTTP status.
func New(c *gin.Context, status int, err error) {
	e := Error{
		Message: err.Error(),
	}

	var coder Coder
	if errors.As(err, &coder) {
		e.Code = coder.ErrorCode()
	}

	c.JSON(status, e)
}
