package repository

import (
	"context"

	"activies-backend/internal/model"
)

type UserRepository interface {
	// Create inserts a new user and fills in the generated id.
	Create(ctx context.Context, user *model.User) error
	// GetIDByCredentials resolves a username/digest pair to a user id.
	// Returns model.ErrInvalidCredentials when no row matches.
	GetIDByCredentials(ctx context.Context, username, passwordDigest string) (int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type AuthKeyRepository interface {
	// Insert stores a freshly minted authkey for a user. A collision with
	// an existing key fails with model.ErrAuthkeyNotInserted; it is not
	// retried.
	Insert(ctx context.Context, uid int64, authkey string) error
	// GetUID resolves an authkey to its owning user id. Returns
	// model.ErrAuthorizationFailed when no row matches.
	GetUID(ctx context.Context, authkey string) (int64, error)
}

type PostRepository interface {
	Create(ctx context.Context, uid int64, title, description, location string, pic *string) error
	// List returns every post joined with its authoring username.
	List(ctx context.Context) ([]model.PostSummary, error)
	// GetDetail returns one post with its like count and whether viewerID
	// has liked it. Returns model.ErrPostNotFound on zero rows.
	GetDetail(ctx context.Context, postID, viewerID int64) (*model.PostDetail, error)
	// Like records a (uid, pid) like; an already-existing identical row is
	// a no-op.
	Like(ctx context.Context, uid, postID int64) error
	// Unlike removes the (uid, pid) like if present; deleting zero rows is
	// not an error.
	Unlike(ctx context.Context, uid, postID int64) error
	CountLikes(ctx context.Context, postID int64) (int64, error)
}
