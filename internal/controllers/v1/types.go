package v1

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/models"
)

// owner returns the caller identity resolved by the router's identity
// middleware. Every store call receives it explicitly.
func owner(c *gin.Context) string {
	return c.GetString(string(models.ContextUser))
}

// normalizeDescription trims an optional description. Descriptions that are
// missing or blank after trimming are stored as null.
func normalizeDescription(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
