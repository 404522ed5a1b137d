package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	testRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/hanifr/storefront/internal/common"
	"github.com/hanifr/storefront/internal/session"
	"github.com/hanifr/storefront/user/service"
)

func setupSessions(t *testing.T, c context.Context) session.Store {
	t.Helper()

	redisContainer, err := testRedis.Run(
		c,
		"redis:7.4.2-alpine3.21",
		testRedis.WithLogLevel(testRedis.LogLevelVerbose),
	)
	if err != nil {
		t.Fatalf("failed running redis container with error: %s", err)
	}
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(redisContainer); err != nil {
			t.Fatalf("failed to terminate container: %s", err)
		}
	})

	redisConnStr, err := redisContainer.ConnectionString(c)
	if err != nil {
		t.Fatalf("failed getting redis connection string with error: %s", err)
	}

	redisOpt, err := redis.ParseURL(redisConnStr)
	if err != nil {
		t.Fatalf("failed parsing redis connection string with error: %s", err)
	}

	redisClient := redis.NewClient(redisOpt)
	if err = redisClient.Ping(c).Err(); err != nil {
		t.Fatalf("failed ping redis client with error: %s", err)
	}
	t.Cleanup(func() { redisClient.Close() })

	return session.NewStore(redisClient)
}

func TestLogout(t *testing.T) {
	c := context.Background()
	sessions := setupSessions(t, c)
	controller := UserController{service: &service.UserService{}, sessions: sessions}

	logout := func(sess session.Session) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodDelete, "/logout", nil)
		r = r.WithContext(session.AttachToContext(r.Context(), sess))
		w := httptest.NewRecorder()
		controller.Logout(w, r)
		return w
	}

	t.Run("ClearsUserButKeepsCart", func(t *testing.T) {
		userID := uuid.New()
		cartID := uuid.New()
		sess := session.New()
		sess.UserID = &userID
		sess.CartID = &cartID
		require.NoError(t, sessions.Save(c, sess))

		w := logout(sess)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, common.RootPath, w.Header().Get("Location"))

		saved, err := sessions.Find(c, sess.ID)
		require.NoError(t, err)
		assert.Nil(t, saved.UserID)
		require.NotNil(t, saved.CartID)
		assert.Equal(t, cartID, *saved.CartID)
		assert.Equal(t, common.NoticeLoggedOut, saved.Notice)
	})

	t.Run("LoggingOutWhileLoggedOutIsANoOp", func(t *testing.T) {
		cartID := uuid.New()
		sess := session.New()
		sess.CartID = &cartID
		require.NoError(t, sessions.Save(c, sess))

		w := logout(sess)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, common.RootPath, w.Header().Get("Location"))

		saved, err := sessions.Find(c, sess.ID)
		require.NoError(t, err)
		assert.Nil(t, saved.UserID)
		require.NotNil(t, saved.CartID)
		assert.Equal(t, cartID, *saved.CartID)
	})
}
