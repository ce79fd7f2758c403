package jwt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIssueAndParse(t *testing.T) {
	token, err := Issue("secret", 42, "admin", 1)
	require.NoError(t, err)

	claims, err := ParseAuth("Bearer "+token, "secret")
	require.NoError(t, err)
	require.Equal(t, float64(42), claims["sub"])
	require.Equal(t, "admin", claims["role"])
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := Issue("secret", 42, "resident", 1)
	require.NoError(t, err)

	_, err = ParseAuth("Bearer "+token, "other-secret")
	require.Error(t, err)
}

func TestParse_MissingHeader(t *testing.T) {
	_, err := ParseAuth("", "secret")
	require.Error(t, err)

	_, err = ParseAuth("Bearer ", "secret")
	require.Error(t, err)
}
