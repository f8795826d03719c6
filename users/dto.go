// Package users provides the read side of the user repository: listing users,
// fetching a single profile, and listing a user's sent and received messages
// joined with the counterpart's public profile.
package users

import "time"

// UserSummary is the public view of a user, safe for any response.
type UserSummary struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// UserDetail is the public view plus the account timestamps.
type UserDetail struct {
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone"`
	JoinAt      time.Time `json:"join_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}

// MessageSummary is one entry in a to/from listing. Exactly one of FromUser
// and ToUser is populated: the counterpart of the user the listing is for.
type MessageSummary struct {
	ID       int          `json:"id"`
	Body     string       `json:"body"`
	SentAt   time.Time    `json:"sent_at"`
	ReadAt   *time.Time   `json:"read_at"`
	FromUser *UserSummary `json:"from_user,omitempty"`
	ToUser   *UserSummary `json:"to_user,omitempty"`
}

// UsersResponse wraps the user list endpoint payload.
type UsersResponse struct {
	Users []UserSummary `json:"users"`
}

// UserResponse wraps the user detail endpoint payload.
type UserResponse struct {
	User UserDetail `json:"user"`
}

// MessagesToResponse wraps the received-messages listing.
type MessagesToResponse struct {
	MessagesTo []MessageSummary `json:"messagesTo"`
}

// MessagesFromResponse wraps the sent-messages listing.
type MessagesFromResponse struct {
	MessagesFrom []MessageSummary `json:"messagesFrom"`
}
