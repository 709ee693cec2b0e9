package service

import (
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"ciphersafe-be/internal/apperrors"
	"ciphersafe-be/internal/jwt"
	"ciphersafe-be/internal/models"
	"ciphersafe-be/internal/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Signup(req *models.SignupRequest) (*models.SignupResponse, error)
	Login(req *models.LoginRequest) (*models.LoginResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Signup creates a new user account and logs it in
func (s *authService) Signup(req *models.SignupRequest) (*models.SignupResponse, error) {
	// Check if user already exists
	existingUser, err := s.userRepo.FindByEmail(req.Email)
	if err == nil && existingUser != nil {
		return nil, apperrors.ErrEmailExists
	}

	// Hash password (cost 10)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Create user; the unique index on email closes the check-then-create race
	user, err := s.userRepo.Create(req.Name, req.Email, string(hashedPassword))
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Generate JWT token for automatic login after signup
	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.SignupResponse{
		Token: token,
		User: models.UserResponse{
			ID:        user.ID,
			Name:      user.Name,
			Email:     user.Email,
			Status:    user.Status,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

// Login authenticates a user and returns a JWT token. A missing user and a
// wrong password produce the same error so email existence is not leaked.
func (s *authService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	// Stamp last login; a failure here should not block the login itself
	if err := s.userRepo.UpdateLastLogin(user.ID); err != nil {
		log.Printf("Warning: failed to update last login for user %d: %v", user.ID, err)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{Token: token}, nil
}
