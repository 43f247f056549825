package security

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewAuthorityToken returns an opaque secret bound to a single report. It is
// embedded in dispatched emails and authorizes status updates without a
// session, so it must be unguessable.
func NewAuthorityToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate authority token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
