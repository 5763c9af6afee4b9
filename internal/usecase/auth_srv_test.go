package usecase

import (
	"context"
	"testing"

	"pokerroom-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerRequest() *request.RegisterRequest {
	return &request.RegisterRequest{
		Username: "agus",
		Email:    "agus@example.com",
		Password: "rahasia-banget",
	}
}

func TestRegister_Success(t *testing.T) {
	repo := newTestRepo()
	service := NewAuthService(repo, testLogger())

	resp, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	assert.Equal(t, "agus", resp.User.Username)
	assert.NotEmpty(t, resp.Token, "register should auto-login")
	require.NotNil(t, resp.ExpiresAt)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newTestRepo()
	service := NewAuthService(repo, testLogger())

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	duplicate := registerRequest()
	duplicate.Username = "agus2"

	_, err = service.Register(context.Background(), duplicate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegister_DuplicateUsername(t *testing.T) {
	repo := newTestRepo()
	service := NewAuthService(repo, testLogger())

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	duplicate := registerRequest()
	duplicate.Email = "agus2@example.com"

	_, err = service.Register(context.Background(), duplicate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
}

func TestRegister_WeakPasswordRejected(t *testing.T) {
	repo := newTestRepo()
	service := NewAuthService(repo, testLogger())

	req := registerRequest()
	req.Password = "pendek"

	_, err := service.Register(context.Background(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLogin(t *testing.T) {
	repo := newTestRepo()
	service := NewAuthService(repo, testLogger())

	_, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	resp, err := service.Login(context.Background(), &request.LoginRequest{
		Email:    "agus@example.com",
		Password: "rahasia-banget",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = service.Login(context.Background(), &request.LoginRequest{
		Email:    "agus@example.com",
		Password: "salah-password",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLogout_RevokesSession(t *testing.T) {
	repo := newTestRepo()
	service := NewAuthService(repo, testLogger())

	resp, err := service.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	require.NoError(t, service.Logout(context.Background(), resp.Token))

	session, err := repo.Session.FindValidSession(context.Background(), resp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)
}
