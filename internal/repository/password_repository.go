package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"ciphersafe-be/internal/apperrors"
	"ciphersafe-be/internal/entities"
)

// PasswordRepository defines the interface for password entry database
// operations. Every mutating query is keyed on id+user_id so a caller can
// never touch a row it does not own.
type PasswordRepository interface {
	Create(title, username, password string, url, notes *string, userID int64) (*entities.PasswordEntry, error)
	GetByUserID(userID int64) ([]*entities.PasswordEntry, error)
	Update(id, userID int64, title, username, password string, url, notes *string) (*entities.PasswordEntry, error)
	Delete(id, userID int64) error
	TouchLastUsed(id, userID int64) error
}

type passwordRepository struct {
	db *sql.DB
}

// NewPasswordRepository creates a new password repository
func NewPasswordRepository(db *sql.DB) PasswordRepository {
	return &passwordRepository{db: db}
}

const passwordColumns = "id, title, username, password, url, notes, user_id, last_used, created_at, updated_at"

func scanPasswordEntry(row *sql.Row) (*entities.PasswordEntry, error) {
	var entry entities.PasswordEntry
	err := row.Scan(
		&entry.ID,
		&entry.Title,
		&entry.Username,
		&entry.Password,
		&entry.URL,
		&entry.Notes,
		&entry.UserID,
		&entry.LastUsed,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Create inserts a new password entry owned by userID
func (r *passwordRepository) Create(title, username, password string, url, notes *string, userID int64) (*entities.PasswordEntry, error) {
	query := `
		INSERT INTO passwords (title, username, password, url, notes, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + passwordColumns

	entry, err := scanPasswordEntry(r.db.QueryRow(query, title, username, password, url, notes, userID))
	if err != nil {
		return nil, fmt.Errorf("failed to create password entry: %w", err)
	}

	return entry, nil
}

// GetByUserID returns all entries owned by userID, newest first
func (r *passwordRepository) GetByUserID(userID int64) ([]*entities.PasswordEntry, error) {
	query := `
		SELECT ` + passwordColumns + `
		FROM passwords
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list password entries: %w", err)
	}
	defer rows.Close()

	entries := []*entities.PasswordEntry{}
	for rows.Next() {
		var entry entities.PasswordEntry
		err := rows.Scan(
			&entry.ID,
			&entry.Title,
			&entry.Username,
			&entry.Password,
			&entry.URL,
			&entry.Notes,
			&entry.UserID,
			&entry.LastUsed,
			&entry.CreatedAt,
			&entry.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan password entry: %w", err)
		}
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read password entries: %w", err)
	}

	return entries, nil
}

// Update modifies an entry only if id and userID both match; a single
// conditional UPDATE is the whole ownership check.
func (r *passwordRepository) Update(id, userID int64, title, username, password string, url, notes *string) (*entities.PasswordEntry, error) {
	query := `
		UPDATE passwords
		SET title = $3, username = $4, password = $5, url = $6, notes = $7, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + passwordColumns

	entry, err := scanPasswordEntry(r.db.QueryRow(query, id, userID, title, username, password, url, notes))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update password entry: %w", err)
	}

	return entry, nil
}

// Delete removes an entry only if id and userID both match
func (r *passwordRepository) Delete(id, userID int64) error {
	query := `
		DELETE FROM passwords
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.Exec(query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete password entry: %w", err)
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

// TouchLastUsed stamps last_used for an owned entry
func (r *passwordRepository) TouchLastUsed(id, userID int64) error {
	query := `
		UPDATE passwords
		SET last_used = NOW()
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.Exec(query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to update last used: %w", err)
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
