package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ciphersafe-be/internal/apperrors"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func userRows(id int64, name, email, hash string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "last_login", "status", "created_at", "updated_at"}).
		AddRow(id, name, email, hash, nil, "active", now, now)
}

func TestUserRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Alice", "alice@x.com", "hashed").
		WillReturnRows(userRows(1, "Alice", "alice@x.com", "hashed"))

	user, err := repo.Create("Alice", "alice@x.com", "hashed")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "active", user.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Alice", "alice@x.com", "hashed").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.Create("Alice", "alice@x.com", "hashed")
	assert.ErrorIs(t, err, apperrors.ErrEmailExists)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("nobody@x.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByEmail("nobody@x.com")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUserRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs(int64(5)).
		WillReturnRows(userRows(5, "Bob", "bob@x.com", "hash"))

	user, err := repo.FindByID(5)
	require.NoError(t, err)
	assert.Equal(t, "bob@x.com", user.Email)
}

func TestUserRepository_UpdateLastLogin(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec("UPDATE users").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateLastLogin(5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_EmailTakenByOther(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("taken@x.com", int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	taken, err := repo.EmailTakenByOther("taken@x.com", 5)
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestUserRepository_UpdateProfile_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectExec("UPDATE users").
		WithArgs(int64(99), "Name", "mail@x.com", nil).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProfile(99, "Name", "mail@x.com", nil)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
