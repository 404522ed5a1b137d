package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	t.Parallel()

	secretKey := "test-secret"

	t.Run("RoundTripKeepsSessionID", func(t *testing.T) {
		t.Parallel()

		sessionID := uuid.New()
		token, err := SignToken(sessionID, secretKey)
		require.NoError(t, err)

		parsed, err := VerifyToken(token, secretKey)
		require.NoError(t, err)
		assert.Equal(t, sessionID, parsed)
	})

	t.Run("WrongSecretFails", func(t *testing.T) {
		t.Parallel()

		token, err := SignToken(uuid.New(), secretKey)
		require.NoError(t, err)

		_, err = VerifyToken(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("GarbageTokenFails", func(t *testing.T) {
		t.Parallel()

		_, err := VerifyToken("not-a-token", secretKey)
		assert.Error(t, err)
	})
}
