package service

import (
	"microblog/internal/repository"
	"microblog/pkg/utils"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository())

	user, err := svc.Register(RegisterRequest{Username: "alice", Password: "secret123", Email: "alice@example.com"})
	require.NoError(t, err)
	require.True(t, user.ID > 0)
	assert.NotEqual(t, "secret123", user.Password, "password must be stored hashed")

	token, loggedIn, err := svc.Login(LoginRequest{Username: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	claims, err := utils.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID, "token must resolve back to the user")
}

func TestAuthService_DuplicateUsername(t *testing.T) {
	setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository())

	_, err := svc.Register(RegisterRequest{Username: "bob", Password: "secret123", Email: "bob@example.com"})
	require.NoError(t, err)

	_, err = svc.Register(RegisterRequest{Username: "bob", Password: "secret456", Email: "bob2@example.com"})
	verr, ok := AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "username", verr.Field)
}

func TestAuthService_WrongPassword(t *testing.T) {
	setupTestDB(t)
	svc := NewAuthService(repository.NewUserRepository())

	_, err := svc.Register(RegisterRequest{Username: "carol", Password: "secret123", Email: "carol@example.com"})
	require.NoError(t, err)

	_, _, err = svc.Login(LoginRequest{Username: "carol", Password: "wrong"})
	_, ok := AsValidation(err)
	assert.True(t, ok, "bad credentials are a recoverable failure")

	_, _, err = svc.Login(LoginRequest{Username: "nobody", Password: "whatever"})
	_, ok = AsValidation(err)
	assert.True(t, ok)
}
