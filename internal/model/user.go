package model

import "time"

// User represents a user in the database. PublicID is the identity embedded in
// tokens; the internal ID never leaves the server.
type User struct {
	ID           int64
	PublicID     string
	Username     string
	PasswordHash string
	Admin        bool
	CreatedAt    time.Time
}

// SignupRequest represents a user registration request.
type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse represents a successful login response.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse represents a plain message response body.
type MessageResponse struct {
	Message string `json:"message"`
}
