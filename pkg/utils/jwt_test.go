package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	sessionID := uuid.New()

	token, err := CreateSessionToken(sessionID, "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, sessionID.String(), claims.ID)
}

func TestValidateSessionToken_Garbage(t *testing.T) {
	_, err := ValidateSessionToken("not-a-token")
	assert.Error(t, err)
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("cl1nic-secret")
	require.NoError(t, err)

	assert.NoError(t, ComparePasswords(hash, "cl1nic-secret"))
	assert.Error(t, ComparePasswords(hash, "wrong-password"))
}
