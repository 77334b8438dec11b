package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateBookingReference(t *testing.T) {
	pattern := regexp.MustCompile(`^HB-\d+-[A-Z0-9-]{4}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		ref := GenerateBookingReference()
		require.Regexp(t, pattern, ref)
		seen[ref] = true
	}
	// Random suffix makes same-millisecond collisions unlikely even in a
	// tight loop.
	require.Greater(t, len(seen), 90)
}

func TestGenerateTransactionID(t *testing.T) {
	id := GenerateTransactionID()
	require.Regexp(t, `^TX-[0-9a-f-]{8}$`, id)
	require.NotEqual(t, id, GenerateTransactionID())
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(32)
	require.NoError(t, err)
	require.Len(t, token, 64) // hex doubles the byte count
}
