package token

import (
	"crypto/rand"
	"encoding/hex"

	"reserva/internal/pkg/errs"
)

const sessionTokenBytes = 32

// NewSessionToken returns an opaque token for the session cookie.
func NewSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errs.Wrap(err, "failed to generate session token")
	}
	return hex.EncodeToString(buf), nil
}
