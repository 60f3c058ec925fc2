package utils_test

import (
	"testing"

	"contactportal/utils"
)

func TestGenerateToken(t *testing.T) {
	a := utils.GenerateToken(32)
	b := utils.GenerateToken(32)

	if a == "" || b == "" {
		t.Fatal("GenerateToken() returned an empty token")
	}
	if a == b {
		t.Error("GenerateToken() returned the same token twice")
	}
	// 32 random bytes base64-encoded: 44 characters
	if len(a) != 44 {
		t.Errorf("GenerateToken(32) length = %d, want 44", len(a))
	}
}

func TestSecretKey(t *testing.T) {
	t.Setenv("SECRET_KEY", "")
	if string(utils.SecretKey()) != "dev-secret-key-change-in-production" {
		t.Errorf("SecretKey() without env = %q, want development fallback", utils.SecretKey())
	}

	t.Setenv("SECRET_KEY", "prod-secret")
	if string(utils.SecretKey()) != "prod-secret" {
		t.Errorf("SecretKey() = %q, want %q", utils.SecretKey(), "prod-secret")
	}
}
