package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hashed)

	require.True(t, CheckPassword(hashed, "correct horse battery staple"))
	require.False(t, CheckPassword(hashed, "wrong password"))
	require.False(t, CheckPassword(hashed, ""))
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("same input")
	require.NoError(t, err)
	b, err := HashPassword("same input")
	require.NoError(t, err)

	// bcrypt salts per call, two hashes of the same input differ
	require.NotEqual(t, a, b)
	require.True(t, CheckPassword(a, "same input"))
	require.True(t, CheckPassword(b, "same input"))
}
