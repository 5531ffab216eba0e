package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"activies-backend/internal/model"
)

type authKeyRepository struct {
	db *sqlx.DB
}

// NewAuthKeyRepository creates a new authkey repository
func NewAuthKeyRepository(db *sqlx.DB) AuthKeyRepository {
	return &authKeyRepository{db: db}
}

// Insert stores a minted authkey. A unique violation means the key
// collided with an existing one; that surfaces as a failed insert rather
// than a retry.
func (r *authKeyRepository) Insert(ctx context.Context, uid int64, authkey string) error {
	query := `INSERT INTO authkeys (uid, authkey) VALUES ($1, $2)`

	result, err := r.db.ExecContext(ctx, query, uid, authkey)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return model.ErrAuthkeyNotInserted
		}
		return fmt.Errorf("failed to insert authkey: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows < 1 {
		return model.ErrAuthkeyNotInserted
	}
	return nil
}

// GetUID resolves an authkey to the owning user id.
func (r *authKeyRepository) GetUID(ctx context.Context, authkey string) (int64, error) {
	query := `SELECT uid FROM authkeys WHERE authkey = $1`

	var uid int64
	err := r.db.GetContext(ctx, &uid, query, authkey)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, model.ErrAuthorizationFailed
		}
		return 0, fmt.Errorf("failed to look up authkey: %w", err)
	}

	return uid, nil
}
