package apperrors

import "errors"

var (
	// common errors
	ErrNotFound = errors.New("not found")

	// auth-specific errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")

	// validation / conflict errors
	ErrValidation       = errors.New("validation error")
	ErrEmailExists      = errors.New("user with this email already exists")
	ErrEmailInUse       = errors.New("email is already in use")
	ErrWrongCurrentPass = errors.New("current password is incorrect")
)
