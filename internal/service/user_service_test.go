package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ciphersafe-be/internal/apperrors"
	"ciphersafe-be/internal/models"
)

func signupTestUser(t *testing.T, repo *fakeUserRepo, email string) int64 {
	t.Helper()
	authSvc := NewAuthService(repo, newTestJWT())
	resp, err := authSvc.Signup(&models.SignupRequest{Name: "Alice", Email: email, Password: "secret1"})
	require.NoError(t, err)
	return resp.User.ID
}

func TestUserService_GetProfile(t *testing.T) {
	repo := newFakeUserRepo()
	id := signupTestUser(t, repo, "alice@x.com")
	svc := NewUserService(repo)

	profile, err := svc.GetProfile(id)
	require.NoError(t, err)
	assert.Equal(t, id, profile.ID)
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, "alice@x.com", profile.Email)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.GetProfile(123)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserService_UpdateProfile_NameAndEmail(t *testing.T) {
	repo := newFakeUserRepo()
	id := signupTestUser(t, repo, "alice@x.com")
	svc := NewUserService(repo)

	err := svc.UpdateProfile(id, &models.UpdateProfileRequest{Name: "Alicia", Email: "alicia@x.com"})
	require.NoError(t, err)

	assert.Equal(t, "Alicia", repo.updatedName)
	assert.Equal(t, "alicia@x.com", repo.updatedEmail)
	assert.Nil(t, repo.updatedHash) // no password change requested
}

func TestUserService_UpdateProfile_ChangePassword(t *testing.T) {
	repo := newFakeUserRepo()
	id := signupTestUser(t, repo, "alice@x.com")
	svc := NewUserService(repo)

	err := svc.UpdateProfile(id, &models.UpdateProfileRequest{
		Name:            "Alice",
		Email:           "alice@x.com",
		CurrentPassword: "secret1",
		NewPassword:     "newsecret",
	})
	require.NoError(t, err)

	require.NotNil(t, repo.updatedHash)
	assert.NotEqual(t, "newsecret", *repo.updatedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*repo.updatedHash), []byte("newsecret")))
}

func TestUserService_UpdateProfile_WrongCurrentPassword(t *testing.T) {
	repo := newFakeUserRepo()
	id := signupTestUser(t, repo, "alice@x.com")
	svc := NewUserService(repo)

	err := svc.UpdateProfile(id, &models.UpdateProfileRequest{
		Name:            "Alice",
		Email:           "alice@x.com",
		CurrentPassword: "wrong!!",
		NewPassword:     "newsecret",
	})
	assert.ErrorIs(t, err, apperrors.ErrWrongCurrentPass)
	assert.Nil(t, repo.updatedHash)
}

func TestUserService_UpdateProfile_EmailTaken(t *testing.T) {
	repo := newFakeUserRepo()
	id := signupTestUser(t, repo, "alice@x.com")
	signupTestUser(t, repo, "bob@x.com")
	svc := NewUserService(repo)

	err := svc.UpdateProfile(id, &models.UpdateProfileRequest{Name: "Alice", Email: "bob@x.com"})
	assert.ErrorIs(t, err, apperrors.ErrEmailInUse)
}
