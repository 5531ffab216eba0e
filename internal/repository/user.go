package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"activies-backend/internal/model"
)

// userRepository implements UserRepository using sqlx
type userRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO users (username, email, password_digest)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		u.Username,
		u.Email,
		u.PasswordDigest,
	).Scan(&u.ID)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.ErrUserNotInserted
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetIDByCredentials matches username and password digest in one query.
func (r *userRepository) GetIDByCredentials(ctx context.Context, username, passwordDigest string) (int64, error) {
	query := `
		SELECT id FROM users
		WHERE username = $1 AND password_digest = $2
		LIMIT 1
	`

	var id int64
	err := r.db.GetContext(ctx, &id, query, username, passwordDigest)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, model.ErrInvalidCredentials
		}
		return 0, fmt.Errorf("failed to get user by credentials: %w", err)
	}

	return id, nil
}

// ExistsByUsername checks if a username is already taken
func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, username)
	if err != nil {
		return false, fmt.Errorf("failed to check username existence: %w", err)
	}

	return exists, nil
}
