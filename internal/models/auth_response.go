package models

import "time"

// UserResponse is the public view of a user account (no password hash)
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// SignupResponse represents the response after user registration
type SignupResponse struct {
	Token string       `json:"token"` // JWT token for automatic login after signup
	User  UserResponse `json:"user"`
}

// LoginResponse represents the response after successful authentication
type LoginResponse struct {
	Token string `json:"token"` // JWT token
}
