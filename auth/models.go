// Package auth is responsible for authentication and authorization: user
// registration, login, token issuance and verification, and the request
// middleware gates. This file defines the User model shared across modules.
package auth

import "time"

// User represents a user of the site as stored in the users table.
// The username is the primary key and the sole identity embedded in tokens.
type User struct {
	Username string `json:"username"`
	// The bcrypt hash. The json "-" tag keeps it out of every API response.
	HashedPassword string    `json:"-"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Phone          string    `json:"phone"`
	JoinAt         time.Time `json:"join_at"`
	LastLoginAt    time.Time `json:"last_login_at"`
}
