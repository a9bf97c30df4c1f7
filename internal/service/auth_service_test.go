package service

import (
	"context"
	"testing"
	"time"

	"ecotrack/internal/dto"
	"ecotrack/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAuthService() (*AuthService, *memUsers) {
	users := newMemUsers()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(users, jwtManager, zap.NewNop()), users
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, users := newTestAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "bob",
		Email:    " Bob@Example.com ",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", registered.User.Email)
	assert.Equal(t, "Bearer", registered.TokenType)
	assert.Equal(t, int64(3600), registered.ExpiresIn)
	assert.NotEmpty(t, registered.AccessToken)
	assert.NotEmpty(t, registered.RefreshToken)

	stored, err := users.GetByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", stored.Password)

	loggedIn, err := svc.Login(ctx, &dto.LoginRequest{Email: "bob@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, loggedIn.User.ID)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "bob@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()
	req := &dto.RegisterRequest{Username: "bob", Email: "bob@example.com", Password: "correct-horse"}

	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestAuthService_RefreshToken(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, registered.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, refreshed.User.ID)

	_, err = svc.RefreshToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
