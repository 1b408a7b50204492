package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestCanSubmitContactWithoutRedis(t *testing.T) {
	ok, msg := CanSubmitContact(nil, "alice@example.com")
	assert.True(t, ok)
	assert.Empty(t, msg)

	// No-op without a client.
	MarkContactSubmitted(nil, "alice@example.com")
}
