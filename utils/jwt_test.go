package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := NewAccessToken("secret", "guest@example.com", "customer", time.Hour)
	require.NoError(t, err)

	claims, err := ParseAccessToken("secret", token)
	require.NoError(t, err)
	require.Equal(t, "guest@example.com", claims.Email)
	require.Equal(t, "customer", claims.Role)
}

func TestParseAccessTokenRejectsBadInput(t *testing.T) {
	token, err := NewAccessToken("secret", "guest@example.com", "customer", time.Hour)
	require.NoError(t, err)

	_, err = ParseAccessToken("wrong-secret", token)
	require.Error(t, err)

	_, err = ParseAccessToken("secret", "not.a.token")
	require.Error(t, err)

	expired, err := NewAccessToken("secret", "guest@example.com", "customer", -time.Minute)
	require.NoError(t, err)
	_, err = ParseAccessToken("secret", expired)
	require.Error(t, err)
}
