package models

// SavePasswordRequest represents the request body for creating or updating
// a password entry (PUT uses the same required fields as POST)
type SavePasswordRequest struct {
	Title    string  `json:"title" binding:"required,min=1,max=100"`
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	URL      *string `json:"url,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}
