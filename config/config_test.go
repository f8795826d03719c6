package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

// setBaseEnv sets the minimum required variables. t.Setenv restores the
// previous values automatically.
func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "messagely")
	t.Setenv("DB_PASSWORD", "hunter2")
	t.Setenv("JWT_SECRET", "test-secret")
}

func clearOptionalEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DB_NAME", "DB_HOST", "DB_PORT", "DB_POOL_SIZE", "JWT_TOKEN_DURATION", "BCRYPT_COST", "PORT"} {
		t.Setenv(key, "") // mark for restoration
		os.Unsetenv(key)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	setBaseEnv(t)
	clearOptionalEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}

	if cfg.DB.User != "messagely" || cfg.DB.Password != "hunter2" {
		t.Errorf("db credentials not carried through: %+v", cfg.DB)
	}
	if cfg.DB.DBName != "messagely" {
		t.Errorf("DBName = %q, want default messagely", cfg.DB.DBName)
	}
	if cfg.DB.Host != "localhost" || cfg.DB.Port != 5432 {
		t.Errorf("host/port defaults wrong: %s:%d", cfg.DB.Host, cfg.DB.Port)
	}
	if cfg.Auth.JWTSecret != "test-secret" {
		t.Errorf("JWTSecret = %q", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.TokenDuration != 24*time.Hour {
		t.Errorf("TokenDuration = %v, want 24h", cfg.Auth.TokenDuration)
	}
	if cfg.Auth.BcryptCost != 12 {
		t.Errorf("BcryptCost = %d, want 12", cfg.Auth.BcryptCost)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
}

func TestLoadConfig_MissingRequiredCollectsAllErrors(t *testing.T) {
	clearOptionalEnv(t)
	for _, key := range []string{"DB_USER", "DB_PASSWORD", "JWT_SECRET"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("expected an error for missing required variables")
	}
	for _, key := range []string{"DB_USER", "DB_PASSWORD", "JWT_SECRET"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error should mention %s: %v", key, err)
		}
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	setBaseEnv(t)
	clearOptionalEnv(t)
	t.Setenv("DB_NAME", "messagely_test")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("JWT_TOKEN_DURATION", "15m")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("PORT", "9999")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.DB.DBName != "messagely_test" || cfg.DB.Port != 5433 {
		t.Errorf("db overrides not applied: %+v", cfg.DB)
	}
	if cfg.Auth.TokenDuration != 15*time.Minute {
		t.Errorf("TokenDuration = %v", cfg.Auth.TokenDuration)
	}
	if cfg.Auth.BcryptCost != 10 {
		t.Errorf("BcryptCost = %d", cfg.Auth.BcryptCost)
	}
	if cfg.Server.Port != "9999" {
		t.Errorf("Port = %q", cfg.Server.Port)
	}
}

func TestLoadConfig_BcryptCostOutOfRangeIsAnError(t *testing.T) {
	setBaseEnv(t)
	clearOptionalEnv(t)
	t.Setenv("BCRYPT_COST", "99")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("expected an error for an out-of-range bcrypt cost")
	}
	if !strings.Contains(err.Error(), "BCRYPT_COST") {
		t.Errorf("error should mention BCRYPT_COST: %v", err)
	}
}

func TestLoadConfig_BadDurationIsAnError(t *testing.T) {
	setBaseEnv(t)
	clearOptionalEnv(t)
	t.Setenv("JWT_TOKEN_DURATION", "soon")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("expected an error for an unparseable duration")
	}
}
