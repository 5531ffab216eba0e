package service

import (
	"context"
	"fmt"

	"activies-backend/internal/hash"
	"activies-backend/internal/model"
	"activies-backend/internal/repository"
)

// UserService handles login and registration.
type UserService struct {
	repo   repository.UserRepository
	hasher *hash.Hasher
}

func NewUserService(repo repository.UserRepository, hasher *hash.Hasher) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
	}
}

// Login resolves a username/password pair to a user id in a single
// credentials query.
func (s *UserService) Login(ctx context.Context, username, password string) (int64, error) {
	return s.repo.GetIDByCredentials(ctx, username, s.hasher.Digest(password))
}

// Register creates a new user account and returns the new id.
//
// The uniqueness check runs before the insert so that a taken username
// yields its dedicated reply. Two concurrent registrations of the same
// name can both pass the check; the table's unique constraint then fails
// the second insert, which surfaces as a generic insert failure. A
// constraint-first flow would be a local change here.
func (s *UserService) Register(ctx context.Context, username, email, password string) (int64, error) {
	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return 0, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return 0, model.ErrUsernameExists
	}

	user := &model.User{
		Username:       username,
		Email:          email,
		PasswordDigest: s.hasher.Digest(password),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return 0, err
	}

	return user.ID, nil
}
