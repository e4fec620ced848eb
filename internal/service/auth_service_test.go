package service

import (
	"testing"
	"time"

	"studymo_backend/internal/config"
	"studymo_backend/internal/repository"
	"studymo_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	db := newTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-test-secret-test-secret!"
	cfg.JWT.ExpireTime = time.Hour

	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	resp, err := svc.Register(RegisterRequest{
		Name:     "田中太郎",
		Email:    "tanaka@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "tanaka@example.com", resp.User.Email)
	assert.NotEqual(t, "password123", resp.User.Password, "password must be stored hashed")

	claims, err := util.ParseJWT(resp.Token, svc.Config.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)

	login, err := svc.Login(LoginRequest{Email: "tanaka@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)

	req := RegisterRequest{Name: "田中太郎", Email: "tanaka@example.com", Password: "password123"}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginWrongCredentials(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.Register(RegisterRequest{Name: "田中太郎", Email: "tanaka@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Login(LoginRequest{Email: "tanaka@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, err = svc.Login(LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}
