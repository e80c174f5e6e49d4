package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"strconv"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/validate"
	"github.com/rs/zerolog/log"
)

// RequestHost returns the base URL for links in responses.
//
// The scheme defaults to http and only switches to https when the
// x-forwarded-proto header says so. A reverse proxy can override the host
// with x-forwarded-host.
func RequestHost(c *gin.Context) string {
	scheme := "http"
	if c.Request.Header.Get("x-forwarded-proto") == "https" {
		scheme = "https"
	}

	host := c.Request.Host
	if xForwardedHost := c.Request.Header.Get("x-forwarded-host"); xForwardedHost != "" {
		host = xForwardedHost
	}

	return scheme + "://" + host
}

// BindData binds the JSON request body to the struct passed in data and
// returns the top-level keys that were present in the body.
//
// The key list lets callers distinguish a field sent as null from a field
// that was not sent at all, which matters for partial updates.
func BindData(c *gin.Context, data any) ([]string, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return nil, ErrInvalidBody
	}

	if len(body) == 0 {
		return nil, ErrRequestBodyEmpty
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return nil, ErrInvalidBody
	}

	fields := make([]string, 0, len(raw))
	for field := range raw {
		fields = append(fields, field)
	}

	if err := json.Unmarshal(body, data); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return nil, validate.FieldError(typeErr.Field)
		}

		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return nil, ErrInvalidBody
	}

	return fields, nil
}

// Pagination clamps the limit and offset query parameters.
//
// The limit defaults to defaultLimit when missing or unparseable and is
// silently capped at maxLimit. The offset defaults to 0.
func Pagination(c *gin.Context, defaultLimit, maxLimit int) (limit, offset int) {
	limit = defaultLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v >= 0 {
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		offset = v
	}

	return limit, offset
}
