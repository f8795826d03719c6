package messages

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/messagely-go/apperror"
)

// pgForeignKeyViolation is the PostgreSQL error code raised when a message
// references a username that does not exist.
const pgForeignKeyViolation = "23503"

// MessageService defines the message operations. Handlers depend on this
// interface rather than the concrete implementation.
type MessageService interface {
	Get(ctx context.Context, id int) (*Message, error)
	Create(ctx context.Context, fromUsername, toUsername, body string) (*SentMessage, error)
	MarkRead(ctx context.Context, id int) (*ReadReceipt, error)
}

// messageServiceImpl is the pgx-backed implementation of MessageService.
type messageServiceImpl struct {
	db *pgxpool.Pool
}

// NewMessageService creates a new MessageService.
func NewMessageService(db *pgxpool.Pool) MessageService {
	return &messageServiceImpl{db: db}
}

// Get fetches one message by id, joined with both parties' public profiles.
func (s *messageServiceImpl) Get(ctx context.Context, id int) (*Message, error) {
	var m Message
	err := s.db.QueryRow(ctx, `
		SELECT m.id, m.body, m.sent_at, m.read_at,
		       f.username, f.first_name, f.last_name, f.phone,
		       t.username, t.first_name, t.last_name, t.phone
		FROM messages AS m
		JOIN users AS f ON m.from_username = f.username
		JOIN users AS t ON m.to_username = t.username
		WHERE m.id = $1`, id,
	).Scan(&m.ID, &m.Body, &m.SentAt, &m.ReadAt,
		&m.FromUser.Username, &m.FromUser.FirstName, &m.FromUser.LastName, &m.FromUser.Phone,
		&m.ToUser.Username, &m.ToUser.FirstName, &m.ToUser.LastName, &m.ToUser.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("no such message: %d", id), nil)
		}
		return nil, apperror.NewDatabaseError("failed to get message", err)
	}
	return &m, nil
}

// Create inserts a new message with sent_at set to the current time. An
// unknown recipient trips the foreign key and surfaces as NotFound.
func (s *messageServiceImpl) Create(ctx context.Context, fromUsername, toUsername, body string) (*SentMessage, error) {
	m := &SentMessage{
		FromUsername: fromUsername,
		ToUsername:   toUsername,
		Body:         body,
	}
	err := s.db.QueryRow(ctx, `
		INSERT INTO messages (from_username, to_username, body, sent_at)
		VALUES ($1, $2, $3, current_timestamp)
		RETURNING id, sent_at`,
		fromUsername, toUsername, body,
	).Scan(&m.ID, &m.SentAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("no such user: %s", toUsername), nil)
		}
		return nil, apperror.NewDatabaseError("failed to create message", err)
	}
	return m, nil
}

// MarkRead sets read_at to the current time, failing with NotFound if no row
// matched. read_at only ever transitions once; re-reading just refreshes the
// timestamp, matching the store's single-statement semantics.
func (s *messageServiceImpl) MarkRead(ctx context.Context, id int) (*ReadReceipt, error) {
	var receipt ReadReceipt
	err := s.db.QueryRow(ctx, `
		UPDATE messages SET read_at = current_timestamp
		WHERE id = $1
		RETURNING id, read_at`, id,
	).Scan(&receipt.ID, &receipt.ReadAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("no such message: %d", id), nil)
		}
		return nil, apperror.NewDatabaseError("failed to mark message read", err)
	}
	return &receipt, nil
}
