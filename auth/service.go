package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/messagely-go/apperror"
	"github.com/user/messagely-go/config"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// AuthService provides registration and authentication against the users
// table. Dependencies are injected via the constructor; the service holds no
// other state.
type AuthService struct {
	db         *pgxpool.Pool
	authConfig config.AuthConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(db *pgxpool.Pool, authConfig config.AuthConfig) *AuthService {
	return &AuthService{
		db:         db,
		authConfig: authConfig,
	}
}

// Register hashes the password and inserts a new user with join_at and
// last_login_at set to the current time, returning the stored record.
// A duplicate username surfaces as a Conflict error; concurrent registrations
// race on the primary key and the loser gets the same Conflict.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.authConfig.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		Username:       req.Username,
		HashedPassword: string(hashedPassword),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
	}

	query := `INSERT INTO users (username, password, first_name, last_name, phone, join_at, last_login_at)
	          VALUES ($1, $2, $3, $4, $5, current_timestamp, current_timestamp)
	          RETURNING join_at, last_login_at`
	err = s.db.QueryRow(ctx, query,
		user.Username, user.HashedPassword, user.FirstName, user.LastName, user.Phone,
	).Scan(&user.JoinAt, &user.LastLoginAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.NewConflictError(fmt.Sprintf("username '%s' already exists", req.Username), nil)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return user, nil
}

// Authenticate reports whether the username/password pair is valid. An
// unknown username and a wrong password both return false without error;
// only store failures produce one.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	var hashed string
	err := s.db.QueryRow(ctx, `SELECT password FROM users WHERE username = $1`, username).Scan(&hashed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, apperror.NewDatabaseError("failed to look up user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}

// UpdateLoginTimestamp sets last_login_at to the current time, failing with
// NotFound if no row matched.
func (s *AuthService) UpdateLoginTimestamp(ctx context.Context, username string) error {
	var returned string
	err := s.db.QueryRow(ctx,
		`UPDATE users SET last_login_at = current_timestamp WHERE username = $1 RETURNING username`,
		username,
	).Scan(&returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NewNotFoundError(fmt.Sprintf("no such user: %s", username), nil)
		}
		return apperror.NewDatabaseError("failed to update login timestamp", err)
	}
	return nil
}

// Login verifies the credentials and issues a session token. The login
// timestamp update is attempted in the background; the response never waits
// on it, and a failure there is only logged.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	ok, err := s.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewInvalidCredentialsError("invalid username/password", nil)
	}

	token, err := s.IssueToken(req.Username)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}

	go func() {
		updateCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.UpdateLoginTimestamp(updateCtx, req.Username); err != nil {
			log.Printf("failed to update login timestamp for %s: %v", req.Username, err)
		}
	}()

	return &TokenResponse{Token: token}, nil
}

// IssueToken signs a session token for the given username using the
// configured secret and duration.
func (s *AuthService) IssueToken(username string) (string, error) {
	return GenerateToken(username, &s.authConfig)
}
