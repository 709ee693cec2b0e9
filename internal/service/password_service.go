package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ciphersafe-be/internal/apperrors"
	"ciphersafe-be/internal/cache"
	"ciphersafe-be/internal/entities"
	"ciphersafe-be/internal/models"
	"ciphersafe-be/internal/repository"
)

const listCacheTTL = 5 * time.Minute

// PasswordService defines the interface for password entry business logic.
// Every operation is scoped to the owning user id taken from the verified
// token, never from the request body.
type PasswordService interface {
	List(userID int64) ([]*entities.PasswordEntry, error)
	Create(userID int64, req *models.SavePasswordRequest) (*entities.PasswordEntry, error)
	Update(id, userID int64, req *models.SavePasswordRequest) (*entities.PasswordEntry, error)
	Delete(id, userID int64) error
	TouchLastUsed(id, userID int64) error
}

type passwordService struct {
	repo  repository.PasswordRepository
	cache cache.Cache
	ctx   context.Context
}

// NewPasswordService creates a new password service
func NewPasswordService(repo repository.PasswordRepository, cacheClient cache.Cache) PasswordService {
	svc := &passwordService{
		repo: repo,
		ctx:  context.Background(),
	}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

func listCacheKey(userID int64) string {
	return fmt.Sprintf("passwords:user:%d", userID)
}

// invalidateList drops the cached entry list after any write
func (s *passwordService) invalidateList(userID int64) {
	if s.cache != nil {
		s.cache.Delete(s.ctx, listCacheKey(userID))
	}
}

// validate mirrors the field rules enforced at the binding layer so the
// service is safe when called directly
func validateEntry(req *models.SavePasswordRequest) error {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return fmt.Errorf("%w: title, username, and password are required fields", apperrors.ErrValidation)
	}
	if len(req.Title) > 100 {
		return fmt.Errorf("%w: title must be at most 100 characters", apperrors.ErrValidation)
	}
	return nil
}

// normalizeURL adds an http:// prefix when a url is given without a scheme
func normalizeURL(url *string) *string {
	if url == nil || *url == "" {
		return nil
	}
	if !strings.HasPrefix(*url, "http://") && !strings.HasPrefix(*url, "https://") {
		normalized := "http://" + *url
		return &normalized
	}
	return url
}

// List returns the user's entries, newest first, serving from cache when warm
func (s *passwordService) List(userID int64) ([]*entities.PasswordEntry, error) {
	if s.cache != nil {
		var cached []*entities.PasswordEntry
		if err := s.cache.GetJSON(s.ctx, listCacheKey(userID), &cached); err == nil {
			return cached, nil
		}
	}

	entries, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetJSON(s.ctx, listCacheKey(userID), entries, listCacheTTL)
	}

	return entries, nil
}

// Create persists a new entry owned by userID
func (s *passwordService) Create(userID int64, req *models.SavePasswordRequest) (*entities.PasswordEntry, error) {
	if err := validateEntry(req); err != nil {
		return nil, err
	}

	entry, err := s.repo.Create(req.Title, req.Username, req.Password, normalizeURL(req.URL), req.Notes, userID)
	if err != nil {
		return nil, err
	}

	s.invalidateList(userID)
	return entry, nil
}

// Update modifies an entry; the id+userID predicate in the repository is the
// sole authorization mechanism, so a foreign id yields ErrNotFound
func (s *passwordService) Update(id, userID int64, req *models.SavePasswordRequest) (*entities.PasswordEntry, error) {
	if err := validateEntry(req); err != nil {
		return nil, err
	}

	entry, err := s.repo.Update(id, userID, req.Title, req.Username, req.Password, normalizeURL(req.URL), req.Notes)
	if err != nil {
		return nil, err
	}

	s.invalidateList(userID)
	return entry, nil
}

// Delete removes an entry owned by userID
func (s *passwordService) Delete(id, userID int64) error {
	if err := s.repo.Delete(id, userID); err != nil {
		return err
	}

	s.invalidateList(userID)
	return nil
}

// TouchLastUsed stamps last_used when the client consumes an entry's secret
// (e.g. copy-to-clipboard). Best-effort: callers run it off the read path.
func (s *passwordService) TouchLastUsed(id, userID int64) error {
	if err := s.repo.TouchLastUsed(id, userID); err != nil {
		return err
	}

	s.invalidateList(userID)
	return nil
}
