package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/negociacion/admin/internal/mockapi/auth"
)

func newService(t *testing.T) *auth.Service {
	t.Helper()
	svc := auth.NewService(bcrypt.MinCost, nil)
	_, err := svc.AddAccount("Admin@Example.com", "s3cret", "Admin")
	require.NoError(t, err)
	return svc
}

func TestLogin_Success(t *testing.T) {
	svc := newService(t)

	token, user, err := svc.Login("admin@example.com", "s3cret")

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Admin@Example.com", user.Email)
	assert.True(t, svc.Valid(token))
}

func TestLogin_TokensAreUnique(t *testing.T) {
	svc := newService(t)

	first, _, err := svc.Login("admin@example.com", "s3cret")
	require.NoError(t, err)
	second, _, err := svc.Login("admin@example.com", "s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, svc.Valid(first))
	assert.True(t, svc.Valid(second))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "admin@example.com", password: "nope"},
		{name: "unknown email", email: "ghost@example.com", password: "s3cret"},
		{name: "empty", email: "", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t)

			token, _, err := svc.Login(tt.email, tt.password)

			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
			assert.Empty(t, token)
		})
	}
}

func TestValid_UnknownToken(t *testing.T) {
	svc := newService(t)

	assert.False(t, svc.Valid("forged"))
	assert.False(t, svc.Valid(""))
}
