package jwt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	token, err := GenerateToken("ona@example.com", 42, "event_organizer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	require.Equal(t, "ona@example.com", claims["email"])
	require.Equal(t, "event_organizer", claims["role"])
	// Numeric claims round-trip as float64.
	require.Equal(t, float64(42), claims["user_id"])
}

func TestValidateTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	token, err := GenerateToken("ona@example.com", 42, "event_organizer")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "different-secret")
	_, err = ValidateToken(token)
	require.Error(t, err)
}
