package model

import "time"

// User represents a registered user. PasswordHash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries a freshly issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse represents user data safe for API responses (no password hash).
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// ProfileResponse is the body of GET /api/protected.
type ProfileResponse struct {
	Msg  string       `json:"msg"`
	User UserResponse `json:"user"`
}
