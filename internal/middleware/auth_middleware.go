package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arnav/teamforge/internal/app/models"
	"github.com/arnav/teamforge/internal/app/models/dto"
	"github.com/arnav/teamforge/internal/pkg/auth"
)

// Context keys for authenticated identity.
const (
	ContextRollNo = "rollNo"
	ContextBatch  = "batch"
)

// AuthMiddleware validates student session tokens.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth validates the bearer token and stores the authenticated roll
// number and batch on the request context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			code := dto.ErrorCodeInvalidToken
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				code = dto.ErrorCodeExpiredToken
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
			return
		}

		if claims.RollNo == "" || !claims.Batch.Valid() {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Token missing identity claims")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextRollNo, claims.RollNo)
		c.Set(ContextBatch, claims.Batch)
		c.Next()
	}
}

// RollNoFromContext returns the authenticated roll number.
func RollNoFromContext(c *gin.Context) string {
	return c.GetString(ContextRollNo)
}

// BatchFromContext returns the authenticated student's batch.
func BatchFromContext(c *gin.Context) models.Batch {
	if batch, ok := c.Get(ContextBatch); ok {
		if b, ok := batch.(models.Batch); ok {
			return b
		}
	}
	return ""
}
