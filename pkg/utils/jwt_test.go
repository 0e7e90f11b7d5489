package utils

import (
	"os"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	InitJWT("test-secret", time.Hour)
	os.Exit(m.Run())
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateToken(42, "Doctor")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != "Doctor" {
		t.Errorf("Role = %q, want Doctor", claims.Role)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := ValidateToken(token); err == nil {
			t.Errorf("token %q should not validate", token)
		}
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := GenerateToken(42, "Doctor")
	if err != nil {
		t.Fatal(err)
	}

	InitJWT("different-secret", time.Hour)
	defer InitJWT("test-secret", time.Hour)

	if _, err := ValidateToken(token); err == nil {
		t.Error("token signed with another secret should not validate")
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	InitJWT("test-secret", -time.Minute)
	defer InitJWT("test-secret", time.Hour)

	token, err := GenerateToken(42, "Doctor")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := ValidateToken(token); err == nil {
		t.Error("expired token should not validate")
	}
}
