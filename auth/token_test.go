package auth

import (
	"testing"
	"time"

	"github.com/user/messagely-go/config"
)

func testAuthConfig(secret string, d time.Duration) *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret:     secret,
		TokenDuration: d,
		BcryptCost:    4,
	}
}

func TestGenerateAndVerify_Success(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig("super-secret", time.Hour)

	tok, err := GenerateToken("alice", cfg)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}
	if tok == "" {
		t.Fatal("expected a non-empty token")
	}

	claims, err := VerifyToken(tok, cfg)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if claims.Username != "alice" {
		t.Fatalf("username mismatch: got %q want %q", claims.Username, "alice")
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig("secret", -1*time.Second)

	tok, err := GenerateToken("alice", cfg)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := VerifyToken(tok, cfg); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("alice", testAuthConfig("right-secret", time.Hour))
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := VerifyToken(tok, testAuthConfig("wrong-secret", time.Hour)); err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestVerifyToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := VerifyToken("not.a.jwt", testAuthConfig("k", time.Hour)); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}

func TestVerifyToken_MissingUsername(t *testing.T) {
	t.Parallel()

	cfg := testAuthConfig("secret", time.Hour)

	tok, err := GenerateToken("", cfg)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := VerifyToken(tok, cfg); err == nil {
		t.Fatal("expected error for token without username claim, got nil")
	}
}
