package entities

import "time"

// User statuses as stored in the status column.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User represents a user entity in the database
type User struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // Don't expose password hash in JSON
	LastLogin    *time.Time `json:"last_login,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
