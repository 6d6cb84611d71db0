package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/arnav/teamforge/internal/app/models"
)

func testService(secret string, exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   secret,
		TokenExp:    exp,
		TokenIssuer: "teamforge-test",
	})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testService("test-secret", time.Hour)

	token, err := svc.GenerateToken("21CS001", models.BatchA)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims() error = %v", err)
	}
	if claims.RollNo != "21CS001" {
		t.Errorf("rollNo = %q, want 21CS001", claims.RollNo)
	}
	if claims.Batch != models.BatchA {
		t.Errorf("batch = %q, want A", claims.Batch)
	}
	if claims.Subject != "21CS001" {
		t.Errorf("subject = %q, want roll number", claims.Subject)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := testService("secret-one", time.Hour).GenerateToken("21CS001", models.BatchA)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := testService("secret-two", time.Hour).ValidateAndExtractClaims(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("ValidateAndExtractClaims() error = %v, want ErrInvalidToken", err)
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	svc := testService("test-secret", -time.Minute)

	token, err := svc.GenerateToken("21CS001", models.BatchB)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := svc.ValidateAndExtractClaims(token); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("ValidateAndExtractClaims() error = %v, want ErrExpiredToken", err)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := testService("test-secret", time.Hour)
	if _, err := svc.ValidateAndExtractClaims("not.a.token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("ValidateAndExtractClaims() error = %v, want ErrInvalidToken", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"missing prefix", "abc.def.ghi", "", true},
		{"wrong scheme", "Basic abc", "", true},
		{"empty token", "Bearer ", "", true},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExtractBearerToken(%q) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ExtractBearerToken(%q) = %q, want %q", tt.header, got, tt.want)
			}
		})
	}
}
