package service

import (
	"context"

	"activies-backend/internal/model"
	"activies-backend/internal/repository"
)

// PostService handles post listing, creation and like state.
type PostService struct {
	repo repository.PostRepository
}

func NewPostService(repo repository.PostRepository) *PostService {
	return &PostService{repo: repo}
}

// List returns every post with its authoring username.
func (s *PostService) List(ctx context.Context) ([]model.PostSummary, error) {
	return s.repo.List(ctx)
}

// Create inserts a post owned by uid.
func (s *PostService) Create(ctx context.Context, uid int64, title, description, location string, pic *string) error {
	return s.repo.Create(ctx, uid, title, description, location, pic)
}

// Show returns the detail view of one post as seen by viewerID.
func (s *PostService) Show(ctx context.Context, postID, viewerID int64) (*model.PostDetail, error) {
	return s.repo.GetDetail(ctx, postID, viewerID)
}

// Like records uid's like on a post and returns the fresh committed
// count. Liking an already-liked post changes nothing.
func (s *PostService) Like(ctx context.Context, uid, postID int64) (int64, error) {
	if err := s.repo.Like(ctx, uid, postID); err != nil {
		return 0, err
	}
	return s.repo.CountLikes(ctx, postID)
}

// Unlike removes uid's like on a post, if any, and returns the fresh
// committed count.
func (s *PostService) Unlike(ctx context.Context, uid, postID int64) (int64, error) {
	if err := s.repo.Unlike(ctx, uid, postID); err != nil {
		return 0, err
	}
	return s.repo.CountLikes(ctx, postID)
}
