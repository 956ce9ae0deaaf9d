package services

import (
	"testing"

	"inkwell/app/repositories"
	"inkwell/app/repositories/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-signing-secret")

func TestAuthServiceRegister(t *testing.T) {
	userRepo := mock.NewUserRepository()
	service := NewAuthService(userRepo, testSecret)

	t.Run("register stores a hashed password", func(t *testing.T) {
		user, err := service.Register("alice", "Alice", "Smith", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.False(t, user.IsAdmin)
		assert.NotEqual(t, "password123", user.Password)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		before := userRepo.Writes
		_, err := service.Register("alice", "Another", "Alice", "password456")
		assert.ErrorIs(t, err, ErrConflict)
		assert.Equal(t, before, userRepo.Writes, "a rejected registration must not write")
	})

	t.Run("short password rejected", func(t *testing.T) {
		_, err := service.Register("bob", "Bob", "Jones", "short")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		_, err := service.Register("", "Bob", "Jones", "password123")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	userRepo := mock.NewUserRepository()
	service := NewAuthService(userRepo, testSecret)

	_, err := service.Register("alice", "Alice", "Smith", "password123")
	require.NoError(t, err)

	t.Run("unknown username", func(t *testing.T) {
		_, err := service.Login("nobody", "password123")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login("alice", "wrongpassword")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("valid credentials yield a verifiable token", func(t *testing.T) {
		token, err := service.Login("alice", "password123")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		identity, err := service.Authenticate(token)
		require.NoError(t, err)

		user, err := userRepo.GetByUsername("alice")
		require.NoError(t, err)
		assert.Equal(t, user.ID, identity.UserID)
		assert.False(t, identity.IsAdmin)
	})
}

func TestAuthServiceAuthenticate(t *testing.T) {
	userRepo := mock.NewUserRepository()
	service := NewAuthService(userRepo, testSecret)

	_, err := service.Register("alice", "Alice", "Smith", "password123")
	require.NoError(t, err)
	token, err := service.Login("alice", "password123")
	require.NoError(t, err)

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.Authenticate("not-a-token")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := NewAuthService(userRepo, []byte("different-secret"))
		_, err := other.Authenticate(token)
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("empty token", func(t *testing.T) {
		_, err := service.Authenticate("")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}
