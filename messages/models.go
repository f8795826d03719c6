// Package messages is responsible for individual message operations: sending
// a message, fetching one by id, and marking it read. Listing a user's
// messages lives in the users package alongside the other per-user reads.
package messages

import "time"

// Party is the public profile of one side of a message.
type Party struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// Message is a single message joined with both parties' public profiles.
type Message struct {
	ID       int        `json:"id"`
	Body     string     `json:"body"`
	SentAt   time.Time  `json:"sent_at"`
	ReadAt   *time.Time `json:"read_at"`
	FromUser Party      `json:"from_user"`
	ToUser   Party      `json:"to_user"`
}

// SentMessage is the shape returned right after creation, before anyone has
// read it; it carries usernames rather than full profiles.
type SentMessage struct {
	ID           int       `json:"id"`
	FromUsername string    `json:"from_username"`
	ToUsername   string    `json:"to_username"`
	Body         string    `json:"body"`
	SentAt       time.Time `json:"sent_at"`
}

// ReadReceipt records the one-time transition of read_at from null.
type ReadReceipt struct {
	ID     int       `json:"id"`
	ReadAt time.Time `json:"read_at"`
}

// SendMessageRequest is the payload for sending a message. The sender is
// always the authenticated identity, never a request field.
type SendMessageRequest struct {
	ToUsername string `json:"to_username" example:"recipient"`
	Body       string `json:"body" example:"hello there"`
}

// MessageResponse wraps a fetched message.
type MessageResponse struct {
	Message Message `json:"message"`
}

// SentMessageResponse wraps a newly created message.
type SentMessageResponse struct {
	Message SentMessage `json:"message"`
}

// ReadReceiptResponse wraps a read receipt.
type ReadReceiptResponse struct {
	Message ReadReceipt `json:"message"`
}
