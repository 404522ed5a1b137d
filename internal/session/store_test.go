package session

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	testRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	inErrors "github.com/hanifr/storefront/internal/errors"
)

func setupStore(t *testing.T, c context.Context) Store {
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

	return NewStore(redisClient)
}

func TestStore(t *testing.T) {
	c := context.Background()
	store := setupStore(t, c)

	t.Run("FindMissingSessionFails", func(t *testing.T) {
		_, err := store.Find(c, uuid.New())
		assert.ErrorIs(t, err, inErrors.ErrSessionNotFound)
	})

	t.Run("SaveThenFindRoundTrips", func(t *testing.T) {
		sess := New()
		userID := uuid.New()
		cartID := uuid.New()
		sess.UserID = &userID
		sess.CartID = &cartID
		sess.IntendedURL = "/orders"
		require.NoError(t, store.Save(c, sess))

		found, err := store.Find(c, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, sess.ID, found.ID)
		assert.Equal(t, &userID, found.UserID)
		assert.Equal(t, &cartID, found.CartID)
		assert.Equal(t, "/orders", found.IntendedURL)
	})

	t.Run("DeleteRemovesSession", func(t *testing.T) {
		sess := New()
		require.NoError(t, store.Save(c, sess))
		require.NoError(t, store.Delete(c, sess.ID))

		_, err := store.Find(c, sess.ID)
		assert.ErrorIs(t, err, inErrors.ErrSessionNotFound)
	})
}

func TestConsumeNotice(t *testing.T) {
	c := context.Background()
	store := setupStore(t, c)

	t.Run("NoticeShowsAtMostOnce", func(t *testing.T) {
		sess := New()
		sess.Notice = "Logged out"
		require.NoError(t, store.Save(c, sess))

		notice, sess, err := store.ConsumeNotice(c, sess)
		require.NoError(t, err)
		assert.Equal(t, "Logged out", notice)
		assert.Empty(t, sess.Notice)

		found, err := store.Find(c, sess.ID)
		require.NoError(t, err)
		assert.Empty(t, found.Notice)

		notice, _, err = store.ConsumeNotice(c, found)
		require.NoError(t, err)
		assert.Empty(t, notice)
	})

	t.Run("EmptyNoticeIsANoOp", func(t *testing.T) {
		sess := New()
		require.NoError(t, store.Save(c, sess))

		notice, _, err := store.ConsumeNotice(c, sess)
		require.NoError(t, err)
		assert.Empty(t, notice)
	})
}
