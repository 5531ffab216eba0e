package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"activies-backend/internal/model"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts a new post owned by uid.
func (r *postRepository) Create(ctx context.Context, uid int64, title, description, location string, pic *string) error {
	query := `
		INSERT INTO posts (uid, title, description, location, pic)
		VALUES ($1, $2, $3, $4, $5)
	`

	result, err := r.db.ExecContext(ctx, query, uid, title, description, location, pic)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows < 1 {
		return model.ErrPostNotInserted
	}
	return nil
}

// List returns every post joined with its authoring username.
func (r *postRepository) List(ctx context.Context) ([]model.PostSummary, error) {
	query := `
		SELECT p.id, p.title, p.description, p.pic, u.username AS author
		FROM posts p
		JOIN users u ON u.id = p.uid
		ORDER BY p.id
	`

	posts := []model.PostSummary{}
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// GetDetail returns one post with its committed like count and whether
// viewerID has liked it.
func (r *postRepository) GetDetail(ctx context.Context, postID, viewerID int64) (*model.PostDetail, error) {
	query := `
		SELECT p.id, p.uid, p.title, p.description, p.location, p.pic,
		       (SELECT COUNT(*) FROM likes l WHERE l.pid = p.id) AS likes,
		       EXISTS(SELECT 1 FROM likes l WHERE l.pid = p.id AND l.uid = $2) AS i_liked
		FROM posts p
		WHERE p.id = $1
	`

	var detail model.PostDetail
	err := r.db.GetContext(ctx, &detail, query, postID, viewerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post detail: %w", err)
	}

	return &detail, nil
}

// Like records a (uid, pid) pair. The ON CONFLICT clause makes a repeat
// like from the same user a no-op instead of a constraint error.
func (r *postRepository) Like(ctx context.Context, uid, postID int64) error {
	query := `
		INSERT INTO likes (uid, pid) VALUES ($1, $2)
		ON CONFLICT (uid, pid) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, uid, postID)
	if err != nil {
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

// Unlike removes the (uid, pid) pair if present. Zero deleted rows is not
// an error.
func (r *postRepository) Unlike(ctx context.Context, uid, postID int64) error {
	query := `DELETE FROM likes WHERE uid = $1 AND pid = $2`

	_, err := r.db.ExecContext(ctx, query, uid, postID)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

// CountLikes returns the committed like count for a post.
func (r *postRepository) CountLikes(ctx context.Context, postID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM likes WHERE pid = $1`

	var count int64
	err := r.db.GetContext(ctx, &count, query, postID)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
