package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"alcyxob/irontrack/internal/config"
	"alcyxob/irontrack/internal/service"
)

func TestAuthService_DisabledWithoutPasswordHash(t *testing.T) {
	svc := service.NewAuthService(config.AuthConfig{})
	assert.False(t, svc.Enabled())

	_, err := svc.Login(context.Background(), "whatever")
	assert.ErrorIs(t, err, service.ErrAuthDisabled)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("open sesame"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := service.NewAuthService(config.AuthConfig{
		PasswordHash: string(hash),
		JWTSecret:    "test-secret",
		Expiration:   time.Hour,
	})
	require.True(t, svc.Enabled())

	_, err = svc.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, service.ErrAuthenticationFailed)

	token, err := svc.Login(context.Background(), "open sesame")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "owner", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}
