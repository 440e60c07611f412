package models

import "time"

// RegisterResponse represents the response after user registration
type RegisterResponse struct {
	UserID    string    `json:"user_id"` // UUID
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenResponse represents the response after successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // always "bearer"
}
