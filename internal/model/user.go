package model

import "errors"

// User represents a registered account. Users are created on registration
// and never updated afterwards.
type User struct {
	ID             int64  `db:"id" json:"id"`
	Username       string `db:"username" json:"username"`
	Email          string `db:"email" json:"email"`
	PasswordDigest string `db:"password_digest" json:"-"`
}

var (
	// ErrInvalidCredentials is returned when no user matches the supplied
	// username and password digest.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameExists is returned when registering a username that is
	// already taken.
	ErrUsernameExists = errors.New("username already exists")

	// ErrUserNotInserted is returned when the user insert affects no rows.
	ErrUserNotInserted = errors.New("user row not inserted")
)
