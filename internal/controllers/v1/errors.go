package v1

import (
	"errors"
	"net/http"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/validate"
)

// status returns the HTTP status for an error.
func status(err error) int {
	var verr validate.Error

	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrCategoryNotFound), errors.Is(err, models.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, httputil.ErrInvalidBody), errors.Is(err, httputil.ErrRequestBodyEmpty):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
