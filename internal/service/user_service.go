package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"ciphersafe-be/internal/apperrors"
	"ciphersafe-be/internal/models"
	"ciphersafe-be/internal/repository"
)

// UserService defines the interface for profile business logic
type UserService interface {
	GetProfile(userID int64) (*models.ProfileResponse, error)
	UpdateProfile(userID int64, req *models.UpdateProfileRequest) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetProfile returns the public profile fields for userID
func (s *userService) GetProfile(userID int64) (*models.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	return &models.ProfileResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

// UpdateProfile updates name/email and, when both currentPassword and
// newPassword are supplied, rotates the password after verifying the
// current one.
func (s *userService) UpdateProfile(userID int64, req *models.UpdateProfileRequest) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return err
	}

	var newHash *string
	if req.CurrentPassword != "" && req.NewPassword != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			return apperrors.ErrWrongCurrentPass
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		hashedStr := string(hashed)
		newHash = &hashedStr
	}

	// Check if the email is already taken by another user
	if req.Email != user.Email {
		taken, err := s.userRepo.EmailTakenByOther(req.Email, userID)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrEmailInUse
		}
	}

	return s.userRepo.UpdateProfile(userID, req.Name, req.Email, newHash)
}
