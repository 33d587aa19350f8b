package crypto

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/pkg/errors"
)

// GenerateSecureToken returns a cryptographically secure random secret,
// base64 url-encoded. It is used as the token signing key when none is
// configured.
func GenerateSecureToken() (string, error) {
	data := make([]byte, 32)

	if _, err := rand.Read(data); err != nil {
		return "", errors.WithStack(err)
	}

	return base64.RawURLEncoding.EncodeToString(data), nil
}
