package utils

import (
	"testing"
)

func TestJWTRoundTrip(t *testing.T) {
	InitJWT("test-secret")

	token, err := GenerateJWT("user-123", "user@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Errorf("user id = %s, want user-123", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("email = %s", claims.Email)
	}
}

func TestValidateJWT_RejectsGarbage(t *testing.T) {
	InitJWT("test-secret")

	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestValidateJWT_RejectsWrongSecret(t *testing.T) {
	InitJWT("secret-one")
	token, err := GenerateJWT("user-123", "user@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	InitJWT("secret-two")
	if _, err := ValidateJWT(token); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestSignatureRoundTrip(t *testing.T) {
	payload := []byte("user-1.1700000000.nonce")

	sig := GenerateSignature(payload, "secret")
	if !VerifySignature(payload, sig, "secret") {
		t.Error("valid signature rejected")
	}
	if VerifySignature(payload, sig, "other-secret") {
		t.Error("signature verified with wrong secret")
	}
	if VerifySignature([]byte("tampered"), sig, "secret") {
		t.Error("signature verified over tampered payload")
	}
}
