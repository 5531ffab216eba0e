package model

import "errors"

// AuthKey maps an opaque bearer token to its owning user. Multiple keys
// may coexist per user; each successful login mints a new one.
type AuthKey struct {
	UID     int64  `db:"uid" json:"uid"`
	Authkey string `db:"authkey" json:"authkey"`
}

var (
	// ErrAuthorizationFailed is returned when a token resolves to no user.
	// Authorized actions fail closed on it.
	ErrAuthorizationFailed = errors.New("authorization failed")

	// ErrAuthkeyNotInserted is returned when storing a freshly minted key
	// fails (collision or store failure). Collisions are not retried.
	ErrAuthkeyNotInserted = errors.New("authkey row not inserted")
)
