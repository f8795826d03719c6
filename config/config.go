// Package config provides configuration management for the messagely application.
// It handles loading and validation of configuration values from environment
// variables, with support for required variables, default values, and
// collective error reporting. Configuration is built once at startup and
// passed explicitly into constructors; nothing reads ambient globals later.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// PoolConfig represents configuration for the database connection pool.
type PoolConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	MaxSize  int
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret     string        // secret key for signing JWTs
	TokenDuration time.Duration // validity window for issued tokens
	BcryptCost    int           // work factor for password hashing
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port string // port for the HTTP server
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	DB     *PoolConfig
	Auth   *AuthConfig
	Server *ServerConfig
}

// getRequiredEnv reads a required environment variable, collecting an error
// when it is absent so that all configuration problems are reported together.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// getOptionalEnv reads an optional environment variable with a default.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvInt reads an optional environment variable parsed as an int.
// Uses defaultValue if not set; appends an error if parsing fails.
func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

// getOptionalEnvDuration reads an optional environment variable parsed as a
// time.Duration ("15m", "24h"). Uses defaultValue if not set; appends an
// error if parsing fails.
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// clampPoolSize keeps the pool size within reasonable bounds, collecting an
// error when a clamp was applied so misconfiguration is visible.
func clampPoolSize(size int, varName string, errors *[]string) int {
	if size < 2 {
		*errors = append(*errors, fmt.Sprintf("pool size for %s (%d) is less than minimum 2, clamping to 2", varName, size))
		return 2
	}
	if size > 100 {
		*errors = append(*errors, fmt.Sprintf("pool size for %s (%d) is greater than maximum 100, clamping to 100", varName, size))
		return 100
	}
	return size
}

// clampBcryptCost keeps the hashing work factor within bcrypt's valid range.
func clampBcryptCost(cost int, errors *[]string) int {
	if cost < bcrypt.MinCost {
		*errors = append(*errors, fmt.Sprintf("BCRYPT_COST (%d) is below bcrypt minimum %d, clamping", cost, bcrypt.MinCost))
		return bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		*errors = append(*errors, fmt.Sprintf("BCRYPT_COST (%d) is above bcrypt maximum %d, clamping", cost, bcrypt.MaxCost))
		return bcrypt.MaxCost
	}
	return cost
}

// defaultBcryptCost matches the work factor the original deployment used.
const defaultBcryptCost = 12

// LoadConfig creates and returns an AppConfig by reading and validating
// environment variables. It collects all errors encountered during loading
// and returns a single aggregated error if any exist.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	// Database configuration
	dbUser := getRequiredEnv("DB_USER", &errors)
	dbPassword := getRequiredEnv("DB_PASSWORD", &errors)
	dbName := getOptionalEnv("DB_NAME", "messagely")
	dbHost := getOptionalEnv("DB_HOST", "localhost")
	dbPort := getOptionalEnvInt("DB_PORT", 5432, &errors)
	poolSize := clampPoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, &errors), "DB_POOL_SIZE", &errors)

	dbConfig := &PoolConfig{
		Host:     dbHost,
		Port:     dbPort,
		User:     dbUser,
		Password: dbPassword,
		DBName:   dbName,
		MaxSize:  poolSize,
	}

	// Auth configuration. JWT_SECRET is deliberately required: falling back to
	// a fixed placeholder would make every deployment share a signing key.
	jwtSecret := getRequiredEnv("JWT_SECRET", &errors)
	tokenDuration := getOptionalEnvDuration("JWT_TOKEN_DURATION", 24*time.Hour, &errors)
	bcryptCost := clampBcryptCost(getOptionalEnvInt("BCRYPT_COST", defaultBcryptCost, &errors), &errors)

	authConfig := &AuthConfig{
		JWTSecret:     jwtSecret,
		TokenDuration: tokenDuration,
		BcryptCost:    bcryptCost,
	}

	// Server configuration
	serverConfig := &ServerConfig{
		Port: getOptionalEnv("PORT", "8080"),
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		DB:     dbConfig,
		Auth:   authConfig,
		Server: serverConfig,
	}, nil
}
