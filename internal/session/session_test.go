package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRedirectBackOr(t *testing.T) {
	t.Parallel()

	t.Run("PrefersIntendedURL", func(t *testing.T) {
		t.Parallel()

		sess := New()
		sess.IntendedURL = "/orders"
		assert.Equal(t, "/orders", sess.RedirectBackOr("/products"))
	})

	t.Run("FallsBackToDefault", func(t *testing.T) {
		t.Parallel()

		sess := New()
		assert.Equal(t, "/products", sess.RedirectBackOr("/products"))
	})
}

func TestLoggedIn(t *testing.T) {
	t.Parallel()

	sess := New()
	assert.False(t, sess.LoggedIn())

	userID := uuid.New()
	sess.UserID = &userID
	assert.True(t, sess.LoggedIn())

	sess.UserID = nil
	assert.False(t, sess.LoggedIn())
}
