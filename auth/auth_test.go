package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", 30*time.Minute)

	token, err := manager.CreateToken("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := manager.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", 30*time.Minute)
	verifier := NewTokenManager("secret-b", 30*time.Minute)

	token, err := issuer.CreateToken("alice")
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsExpiredToken(t *testing.T) {
	manager := NewTokenManager("test-secret", -time.Minute)

	token, err := manager.CreateToken("alice")
	require.NoError(t, err)

	_, err = manager.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret", 30*time.Minute)

	_, err := manager.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2!")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2!", hash)

	assert.True(t, VerifyPassword("hunter2!", hash))
	assert.False(t, VerifyPassword("hunter3!", hash))
}
