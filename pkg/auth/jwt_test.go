package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestJWTService() *JWTService {
	return NewJWTService("client-test-secret", "admin-test-secret")
}

func TestClientToken(t *testing.T) {
	s := newTestJWTService()

	token, err := s.GenerateClientToken(42)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := s.ValidateClientToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, RoleClient, claims.Role)
}

func TestAdminToken(t *testing.T) {
	s := newTestJWTService()

	token, err := s.GenerateAdminToken(7)
	assert.NoError(t, err)

	claims, err := s.ValidateAdminToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestTokenRoleSeparation(t *testing.T) {
	s := newTestJWTService()

	clientToken, err := s.GenerateClientToken(42)
	assert.NoError(t, err)
	adminToken, err := s.GenerateAdminToken(7)
	assert.NoError(t, err)

	_, err = s.ValidateAdminToken(clientToken)
	assert.Error(t, err)
	_, err = s.ValidateClientToken(adminToken)
	assert.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	s := newTestJWTService()

	_, err := s.ValidateClientToken("not-a-token")
	assert.Error(t, err)
	_, err = s.ValidateAdminToken("")
	assert.Error(t, err)
}
