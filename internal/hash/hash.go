// Package hash provides the keyed credential digest. The digest is
// deterministic so that login can match username and digest in a single
// query against the stored value.
package hash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

type Hasher struct {
	secret []byte
}

func New(secret string) *Hasher {
	return &Hasher{secret: []byte(secret)}
}

// Digest returns the hex-encoded HMAC-SHA256 of the password under the
// server secret.
func (h *Hasher) Digest(password string) string {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil))
}
