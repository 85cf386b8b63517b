package services

import (
	"testing"
	"time"

	"geopost-api/config"
	"geopost-api/models"
	"geopost-api/repositories"
	"geopost-api/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) (AuthService, repositories.UserRepository) {
	db := testutil.OpenTestDB(t)
	userRepo := repositories.NewUserRepository(db)
	tokens := NewTokenService(config.NewStaticKeyProvider("test-secret"), 30*time.Minute)
	return NewAuthService(userRepo, tokens), userRepo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newTestAuthService(t)

	user, err := svc.Register(models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsVIP)
	assert.NotEqual(t, "password123", user.Password, "plaintext must never be stored")

	resp, err := svc.Login(models.LoginRequest{Username: "alice", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, userRepo := newTestAuthService(t)

	_, err := svc.Register(models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = svc.Register(models.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "password456",
	})
	assert.ErrorIs(t, err, models.ErrConflict)

	// First record is unaffected.
	stored, err := userRepo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", stored.Email)
}

func TestLoginDoesNotLeakAccountExistence(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)

	_, unknownErr := svc.Login(models.LoginRequest{Username: "nobody", Password: "whatever"})
	_, wrongErr := svc.Login(models.LoginRequest{Username: "alice", Password: "wrong-password"})

	// Unknown username and wrong password are indistinguishable.
	assert.ErrorIs(t, unknownErr, models.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongErr, models.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}
