package models

// UpdateProfileRequest represents the request body for updating a user profile.
// CurrentPassword and NewPassword are both required to change the password;
// when either is absent only name/email are updated.
type UpdateProfileRequest struct {
	Name            string `json:"name" binding:"required,min=2,max=50"`
	Email           string `json:"email" binding:"required,email"`
	CurrentPassword string `json:"currentPassword,omitempty"`
	NewPassword     string `json:"newPassword,omitempty" binding:"omitempty,min=6"`
}

// ProfileResponse represents the response for GET /users/profile
type ProfileResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
