package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"ciphersafe-be/internal/apperrors"
	"ciphersafe-be/internal/entities"
)

const pqUniqueViolation = "23505"

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(name, email, passwordHash string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	FindByID(id int64) (*entities.User, error)
	UpdateLastLogin(id int64) error
	EmailTakenByOther(email string, id int64) (bool, error)
	UpdateProfile(id int64, name, email string, passwordHash *string) error
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = "id, name, email, password_hash, last_login, status, created_at, updated_at"

func scanUser(row *sql.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.LastLogin,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user into the database. Duplicate emails surface as
// apperrors.ErrEmailExists (unique index on users.email).
func (r *userRepository) Create(name, email, passwordHash string) (*entities.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns

	user, err := scanUser(r.db.QueryRow(query, name, email, passwordHash))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, apperrors.ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// FindByEmail finds a user by email (case-sensitive, matching the stored form)
func (r *userRepository) FindByEmail(email string) (*entities.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`

	user, err := scanUser(r.db.QueryRow(query, email))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// FindByID finds a user by ID
func (r *userRepository) FindByID(id int64) (*entities.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	user, err := scanUser(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// UpdateLastLogin stamps the user's last_login with the current time
func (r *userRepository) UpdateLastLogin(id int64) error {
	query := `
		UPDATE users
		SET last_login = NOW(), updated_at = NOW()
		WHERE id = $1
	`

	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

// EmailTakenByOther reports whether email belongs to a user other than id
func (r *userRepository) EmailTakenByOther(email string, id int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE email = $1 AND id <> $2
		)
	`

	var taken bool
	if err := r.db.QueryRow(query, email, id).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return taken, nil
}

// UpdateProfile updates name and email, and the password hash when provided
func (r *userRepository) UpdateProfile(id int64, name, email string, passwordHash *string) error {
	query := `
		UPDATE users
		SET name = $2,
		    email = $3,
		    password_hash = COALESCE($4, password_hash),
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(query, id, name, email, passwordHash)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return apperrors.ErrEmailInUse
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
