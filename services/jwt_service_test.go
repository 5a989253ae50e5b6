package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	return &JWTService{secretKey: "test-secret"}
}

func TestAdminJWTRoundTrip(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateAdminJWT("admin-123", "admin@greendesk.jp")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.VerifyAdminJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-123", claims.AdminID)
	assert.Equal(t, "admin@greendesk.jp", claims.Email)
	assert.Equal(t, "greendesk-backend", claims.Issuer)
}

func TestUserJWTRoundTrip(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateUserJWT("user-456", "taro@greendesk.jp")
	require.NoError(t, err)

	claims, err := svc.VerifyUserJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-456", claims.UserID)
	assert.Equal(t, "taro@greendesk.jp", claims.Email)
}

func TestGenerateJWTRejectsEmptyArgs(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.GenerateAdminJWT("", "admin@greendesk.jp")
	assert.Error(t, err)

	_, err = svc.GenerateUserJWT("user-456", "")
	assert.Error(t, err)
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	svc := newTestJWTService(t)
	other := &JWTService{secretKey: "different-secret"}

	token, err := svc.GenerateAdminJWT("admin-123", "admin@greendesk.jp")
	require.NoError(t, err)

	_, err = other.VerifyAdminJWT(token)
	assert.Error(t, err)
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	svc := newTestJWTService(t)

	_, err := svc.VerifyAdminJWT("not.a.token")
	assert.Error(t, err)

	_, err = svc.VerifyUserJWT("")
	assert.Error(t, err)
}

func TestAdminTokenIsNotAUserToken(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateAdminJWT("admin-123", "admin@greendesk.jp")
	require.NoError(t, err)

	// Same signing key, but the user_id claim is absent
	_, err = svc.VerifyUserJWT(token)
	assert.Error(t, err)
}

func TestInitJWTServiceRequiresSecret(t *testing.T) {
	assert.Error(t, InitJWTService(""))
	assert.NoError(t, InitJWTService("some-secret"))
}
