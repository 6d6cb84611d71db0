package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func TestRequireAdminKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("the-admin-key"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt hash: %v", err)
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	mw := NewAdminMiddleware(string(hash))
	router.GET("/admin/ping", mw.RequireAdminKey(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name       string
		key        string
		wantStatus int
	}{
		{"correct key", "the-admin-key", http.StatusOK},
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "not-the-key", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
			if tt.key != "" {
				req.Header.Set(AdminKeyHeader, tt.key)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}
