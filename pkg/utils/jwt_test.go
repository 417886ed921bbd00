package utils

import (
	"testing"
	"time"
)

func TestGenerateAndParseJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT("42", "customer")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != "42" || claims.Role != "customer" {
		t.Errorf("claims = %q %q", claims.UserID, claims.Role)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("expiration missing: %v", err)
	}
	if time.Until(exp.Time) < 23*time.Hour {
		t.Errorf("token expires too soon: %v", exp.Time)
	}
}

func TestGenerateJWTMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateJWT("1", "admin"); err == nil {
		t.Error("expected an error without a configured secret")
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateJWT("1", "admin")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	t.Setenv("JWT_SECRET", "other-secret")
	if _, err := ParseJWT(token); err == nil {
		t.Error("a token signed with a different secret must not verify")
	}
}

func TestParseJWTGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := ParseJWT("not.a.token"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}
