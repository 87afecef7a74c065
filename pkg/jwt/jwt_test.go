package jwt

import (
	"strings"
	"testing"
)

func TestGenerateAndParse(t *testing.T) {
	token, expireAt, err := GenerateToken("secret", 42, 24)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if expireAt.IsZero() {
		t.Error("zero expiry")
	}

	claims, err := ParseToken("secret", token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("user id = %d, want 42", claims.UserID)
	}
}

func TestParseWrongSecret(t *testing.T) {
	token, _, err := GenerateToken("secret", 42, 24)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := ParseToken("other-secret", token); err == nil {
		t.Error("token accepted with wrong secret")
	}
}

func TestParseExpired(t *testing.T) {
	token, _, err := GenerateToken("secret", 42, -1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	_, err = ParseToken("secret", token)
	if err == nil {
		t.Fatal("expired token accepted")
	}
	if !strings.Contains(err.Error(), "expired") {
		t.Errorf("error %q does not mention expiry", err)
	}
}

func TestParseGarbage(t *testing.T) {
	if _, err := ParseToken("secret", "not.a.token"); err == nil {
		t.Error("garbage token accepted")
	}
}
