package service

import (
	"context"

	"github.com/google/uuid"

	"activies-backend/internal/model"
	"activies-backend/internal/repository"
)

// AuthService is the session authority: it resolves bearer tokens to user
// ids and mints new tokens on login/registration. Token lifecycle policy
// (currently: no expiry, no revocation) lives entirely behind this type.
type AuthService struct {
	repo repository.AuthKeyRepository
}

func NewAuthService(repo repository.AuthKeyRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Authorize validates a bearer token against stored keys and returns the
// owning user id. Unknown or empty tokens fail closed.
func (s *AuthService) Authorize(ctx context.Context, authkey string) (int64, error) {
	if authkey == "" {
		return 0, model.ErrAuthorizationFailed
	}
	return s.repo.GetUID(ctx, authkey)
}

// IssueToken mints and stores a new authkey for the user. Uniqueness is
// enforced by the storage layer; an insertion failure (collision or store
// failure) surfaces as an error and is not retried.
func (s *AuthService) IssueToken(ctx context.Context, uid int64) (string, error) {
	authkey := uuid.New().String()
	if err := s.repo.Insert(ctx, uid, authkey); err != nil {
		return "", err
	}
	return authkey, nil
}
