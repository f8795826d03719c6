// Data transfer objects for the auth endpoints.
package auth

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Username  string `json:"username" example:"newuser"`
	Password  string `json:"password" example:"strongpassword123"`
	FirstName string `json:"first_name" example:"Ada"`
	LastName  string `json:"last_name" example:"Lovelace"`
	Phone     string `json:"phone" example:"555-0100"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Username string `json:"username" example:"newuser"`
	Password string `json:"password" example:"strongpassword123"`
}

// TokenResponse carries the signed session token back to the client.
type TokenResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
