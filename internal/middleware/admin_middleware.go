package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/arnav/teamforge/internal/app/models/dto"
)

// AdminKeyHeader carries the shared admin secret.
const AdminKeyHeader = "X-Admin-Key"

// AdminMiddleware guards admin routes with a shared secret. The secret is
// compared against a bcrypt hash so the plain key never lives in server
// configuration.
type AdminMiddleware struct {
	keyHash []byte
}

// NewAdminMiddleware creates a new AdminMiddleware from the configured
// bcrypt hash of the admin key.
func NewAdminMiddleware(keyHash string) *AdminMiddleware {
	return &AdminMiddleware{keyHash: []byte(keyHash)}
}

// RequireAdminKey rejects requests whose X-Admin-Key header does not match
// the configured hash.
func (m *AdminMiddleware) RequireAdminKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(AdminKeyHeader)
		if key == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Admin key required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if err := bcrypt.CompareHashAndPassword(m.keyHash, []byte(key)); err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Invalid admin key")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}
