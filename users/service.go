package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/messagely-go/apperror"
)

// UserService provides the read operations of the user repository. Each
// method issues a single parameterized query (plus an existence check for the
// message listings); all coordination is left to the store.
type UserService struct {
	db *pgxpool.Pool
}

// NewUserService creates a new UserService.
func NewUserService(db *pgxpool.Pool) *UserService {
	return &UserService{db: db}
}

// All returns the public fields of every user, ordered by username ascending.
func (s *UserService) All(ctx context.Context) ([]UserSummary, error) {
	rows, err := s.db.Query(ctx,
		`SELECT username, first_name, last_name, phone FROM users ORDER BY username`)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}
	defer rows.Close()

	users := []UserSummary{}
	for rows.Next() {
		var u UserSummary
		if err := rows.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Phone); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan user row", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read user rows", err)
	}
	return users, nil
}

// Get returns one user's public fields plus the account timestamps, failing
// with NotFound if the username does not exist.
func (s *UserService) Get(ctx context.Context, username string) (*UserDetail, error) {
	var u UserDetail
	err := s.db.QueryRow(ctx,
		`SELECT username, first_name, last_name, phone, join_at, last_login_at
		 FROM users WHERE username = $1`, username,
	).Scan(&u.Username, &u.FirstName, &u.LastName, &u.Phone, &u.JoinAt, &u.LastLoginAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("no such user: %s", username), nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	return &u, nil
}

// exists reports whether a username is present, as a NotFound error when it
// is not. The message listings use it so an unknown user is a 404 rather
// than an empty list.
func (s *UserService) exists(ctx context.Context, username string) error {
	var found string
	err := s.db.QueryRow(ctx, `SELECT username FROM users WHERE username = $1`, username).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperror.NewNotFoundError(fmt.Sprintf("no such user: %s", username), nil)
		}
		return apperror.NewDatabaseError("failed to look up user", err)
	}
	return nil
}

// MessagesFrom returns all messages sent by the user, each joined with the
// recipient's public profile.
func (s *UserService) MessagesFrom(ctx context.Context, username string) ([]MessageSummary, error) {
	if err := s.exists(ctx, username); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx,
		`SELECT m.id, m.body, m.sent_at, m.read_at,
		        u.username, u.first_name, u.last_name, u.phone
		 FROM messages AS m
		 JOIN users AS u ON m.to_username = u.username
		 WHERE m.from_username = $1
		 ORDER BY m.id`, username)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list sent messages", err)
	}
	defer rows.Close()

	messages := []MessageSummary{}
	for rows.Next() {
		var m MessageSummary
		var to UserSummary
		if err := rows.Scan(&m.ID, &m.Body, &m.SentAt, &m.ReadAt,
			&to.Username, &to.FirstName, &to.LastName, &to.Phone); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan message row", err)
		}
		m.ToUser = &to
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read message rows", err)
	}
	return messages, nil
}

// MessagesTo returns all messages addressed to the user, each joined with the
// sender's public profile.
func (s *UserService) MessagesTo(ctx context.Context, username string) ([]MessageSummary, error) {
	if err := s.exists(ctx, username); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx,
		`SELECT m.id, m.body, m.sent_at, m.read_at,
		        u.username, u.first_name, u.last_name, u.phone
		 FROM messages AS m
		 JOIN users AS u ON m.from_username = u.username
		 WHERE m.to_username = $1
		 ORDER BY m.id`, username)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list received messages", err)
	}
	defer rows.Close()

	messages := []MessageSummary{}
	for rows.Next() {
		var m MessageSummary
		var from UserSummary
		if err := rows.Scan(&m.ID, &m.Body, &m.SentAt, &m.ReadAt,
			&from.Username, &from.FirstName, &from.LastName, &from.Phone); err != nil {
			return nil, apperror.NewDatabaseError("failed to scan message row", err)
		}
		m.FromUser = &from
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to read message rows", err)
	}
	return messages, nil
}
