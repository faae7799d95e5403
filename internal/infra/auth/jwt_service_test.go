package auth

import (
	"testing"
	"time"

	"superstore/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestJWTService(t *testing.T) *jwtService {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			Enabled: true,
			Secret:  "test-secret-key",
		},
	}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := createTestJWTService(t)

	token, err := svc.GenerateToken("dashboard-admin", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "dashboard-admin", subject)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	svc := createTestJWTService(t)

	token, err := svc.GenerateToken("dashboard-admin", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc := createTestJWTService(t)

	token, err := svc.GenerateToken("dashboard-admin", time.Minute)
	require.NoError(t, err)

	other := createTestJWTService(t)
	other.secret = []byte("a-different-secret")

	_, err = other.ValidateToken(token)
	require.Error(t, err)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc := createTestJWTService(t)

	_, err := svc.ValidateToken("not-a-jwt")
	require.Error(t, err)
}

func TestNewJWTService_RequiresSecretWhenEnabled(t *testing.T) {
	cfg := &config.Config{
		Auth: &config.AuthConfig{Enabled: true},
	}

	_, err := NewJWTService(cfg)
	require.Error(t, err)
}
