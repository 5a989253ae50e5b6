package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	svc := NewAuthService()

	hash, err := svc.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, svc.VerifyPassword(hash, "correct horse battery staple"))
	assert.False(t, svc.VerifyPassword(hash, "wrong password"))
	assert.False(t, svc.VerifyPassword("", "anything"))
}

func TestHashPasswordProducesDistinctHashes(t *testing.T) {
	svc := NewAuthService()

	a, err := svc.HashPassword("same-password")
	require.NoError(t, err)
	b, err := svc.HashPassword("same-password")
	require.NoError(t, err)

	// bcrypt salts every hash
	assert.NotEqual(t, a, b)
	assert.True(t, svc.VerifyPassword(a, "same-password"))
	assert.True(t, svc.VerifyPassword(b, "same-password"))
}

func TestValidatePassword(t *testing.T) {
	svc := NewAuthService()

	tests := []struct {
		password string
		valid    bool
	}{
		{"", false},
		{"short", false},
		{"1234567", false},
		{"12345678", true},
		{"a-perfectly-fine-password", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, svc.ValidatePassword(tt.password), "password %q", tt.password)
	}
}

func TestHashTokenIsStable(t *testing.T) {
	svc := NewAuthService()

	a := svc.HashToken("session-token")
	b := svc.HashToken("session-token")
	c := svc.HashToken("other-token")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64) // sha256 hex
}
