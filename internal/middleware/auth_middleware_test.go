package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arnav/teamforge/internal/app/models"
	"github.com/arnav/teamforge/internal/pkg/auth"
)

func authTestRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mw := NewAuthMiddleware(jwtService)
	router.GET("/protected", mw.JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"rollNo": RollNoFromContext(c),
			"batch":  BatchFromContext(c),
		})
	})
	return router
}

func TestJWTAuth(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "teamforge-test",
	})

	validToken, err := jwtService.GenerateToken("21CS001", models.BatchA)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	expiredService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    -time.Minute,
		TokenIssuer: "teamforge-test",
	})
	expiredToken, err := expiredService.GenerateToken("21CS001", models.BatchA)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	noIdentityToken, err := jwtService.GenerateToken("", models.BatchA)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + validToken, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not bearer", "Basic " + validToken, http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized},
		{"missing identity claims", "Bearer " + noIdentityToken, http.StatusUnauthorized},
	}

	router := authTestRouter(jwtService)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestIdentityFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if got := RollNoFromContext(c); got != "" {
		t.Errorf("RollNoFromContext() on bare context = %q, want empty", got)
	}
	if got := BatchFromContext(c); got != "" {
		t.Errorf("BatchFromContext() on bare context = %q, want empty", got)
	}

	c.Set(ContextRollNo, "21CS001")
	c.Set(ContextBatch, models.BatchB)

	if got := RollNoFromContext(c); got != "21CS001" {
		t.Errorf("RollNoFromContext() = %q, want 21CS001", got)
	}
	if got := BatchFromContext(c); got != models.BatchB {
		t.Errorf("BatchFromContext() = %q, want B", got)
	}
}
