package auth

import (
	"testing"
	"time"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Admin.TokenTTL = ttl

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	token, err := svc.GenerateToken("Ali", []string{"admin"})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Ali", claims.Username)
	assert.Equal(t, []string{"admin"}, claims.Roles)
	assert.Equal(t, time.Hour, svc.GetTokenDuration())
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing", time.Hour))
	require.NoError(t, err)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("first_secret_key_for_testing_only", time.Hour))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("second_secret_key_for_testing_only", time.Hour))
	require.NoError(t, err)

	token, err := issuer.GenerateToken("Ali", []string{"admin"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing", time.Minute))
	require.NoError(t, err)

	impl := svc.(*jwtService)
	impl.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.GenerateToken("Ali", nil)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("", time.Hour))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret_for_default_ttl_test", 0))
	require.NoError(t, err)

	assert.Equal(t, 12*time.Hour, svc.GetTokenDuration())
}
