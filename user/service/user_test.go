package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inErrors "github.com/hanifr/storefront/internal/errors"
	"github.com/hanifr/storefront/user/pkg/request"
)

func TestLogin(t *testing.T) {
	c := context.Background()
	pool, pgContainer, _, svc := setup(t)(c)
	defer teardown(t)(pool, pgContainer)

	registered, err := svc.Register(c, request.RegisterRequest{
		Name:     "dave",
		Password: "correct-horse-battery",
	})
	require.NoError(t, err)

	t.Run("CorrectCredentialsReturnUserID", func(t *testing.T) {
		userID, err := svc.Login(c, request.LoginRequest{
			Name:     "dave",
			Password: "correct-horse-battery",
		})
		require.NoError(t, err)
		assert.Equal(t, registered.ID, userID)
	})

	t.Run("UnknownUserAndWrongPasswordAreIndistinguishable", func(t *testing.T) {
		_, unknownErr := svc.Login(c, request.LoginRequest{
			Name:     "nobody",
			Password: "correct-horse-battery",
		})
		assert.ErrorIs(t, unknownErr, inErrors.ErrInvalidCredentials)

		_, wrongErr := svc.Login(c, request.LoginRequest{
			Name:     "dave",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, wrongErr, inErrors.ErrInvalidCredentials)

		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})
}

func TestRegister(t *testing.T) {
	c := context.Background()
	pool, pgContainer, queries, svc := setup(t)(c)
	defer teardown(t)(pool, pgContainer)

	t.Run("StoresBcryptHashNotPassword", func(t *testing.T) {
		registered, err := svc.Register(c, request.RegisterRequest{
			Name:     "erin",
			Password: "a-long-password",
		})
		require.NoError(t, err)

		user, err := queries.FindUserById(c, registered.ID)
		require.NoError(t, err)
		assert.NotEqual(t, "a-long-password", user.PasswordHash)
		assert.NotEmpty(t, user.PasswordHash)
	})

	t.Run("DuplicateNameFails", func(t *testing.T) {
		_, err := svc.Register(c, request.RegisterRequest{
			Name:     "frank",
			Password: "a-long-password",
		})
		require.NoError(t, err)

		_, err = svc.Register(c, request.RegisterRequest{
			Name:     "frank",
			Password: "another-password",
		})
		assert.Error(t, err)
	})
}
