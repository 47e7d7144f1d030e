package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword(t *testing.T) {
	s := &HashService{}

	hash, err := s.HashPassword("secret-password")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "secret-password", hash)

	assert.True(t, s.ComparePassword(hash, "secret-password"))
	assert.False(t, s.ComparePassword(hash, "wrong-password"))
}

func TestHashPasswordEmpty(t *testing.T) {
	s := &HashService{}

	_, err := s.HashPassword("")
	assert.Error(t, err)
}
