package helpers

import (
	"crypto/rand"
	"encoding/base64"
)

// GenToken generates n random bytes encoded as URL-safe base64 without
// padding. Used for opaque bearer tokens and password reset tokens.
func GenToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
