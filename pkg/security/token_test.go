package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAuthorityToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := NewAuthorityToken()
		require.NoError(t, err)
		require.Len(t, tok, 32)
		require.False(t, seen[tok], "token %q generated twice", tok)
		seen[tok] = true
	}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	ct, err := EncryptString("user-1234")
	require.NoError(t, err)
	require.NotEqual(t, "user-1234", ct)

	pt, err := DecryptString(ct)
	require.NoError(t, err)
	require.Equal(t, "user-1234", pt)
}
