package entities

import "time"

// PasswordEntry represents a stored credential entity in the database
type PasswordEntry struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Username  string     `json:"username"`
	Password  string     `json:"password"` // Stored as submitted; no server-side encryption layer
	URL       *string    `json:"url,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
	UserID    int64      `json:"user_id"`
	LastUsed  *time.Time `json:"last_used,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
