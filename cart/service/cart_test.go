package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inErrors "github.com/hanifr/storefront/internal/errors"
	"github.com/hanifr/storefront/internal/repository"
	"github.com/hanifr/storefront/internal/session"
)

func seedProduct(
	t *testing.T,
	c context.Context,
	queries *repository.Queries,
	name, price string,
) repository.Product {
	t.Helper()
	product, err := queries.InsertProduct(c, repository.InsertProductParams{
		Name:  name,
		Price: repository.NumericFromDecimal(decimal.RequireFromString(price)),
	})
	require.NoError(t, err)
	return product
}

func newSession(t *testing.T, c context.Context, sessions session.Store) session.Session {
	t.Helper()
	sess := session.New()
	require.NoError(t, sessions.Save(c, sess))
	return sess
}

func TestAddProduct(t *testing.T) {
	c := context.Background()
	pool, pgContainer, redisContainer, redisClient, queries, svc := setup(t)(c)
	defer teardown(t)(redisClient, pool, pgContainer, redisContainer)
	sessions := session.NewStore(redisClient)

	t.Run("FirstAddCreatesCartAndLineItemWithQuantityOne", func(t *testing.T) {
		product := seedProduct(t, c, queries, "Keyboard", "49.99")
		sess := newSession(t, c, sessions)

		lineItem, sess, err := svc.AddProduct(c, sess, product.ID)
		require.NoError(t, err)

		assert.NotNil(t, sess.CartID)
		assert.Equal(t, product.ID, lineItem.ProductID)
		assert.Equal(t, int32(1), lineItem.Quantity)
		assert.True(t, lineItem.Price.Equal(decimal.RequireFromString("49.99")))

		saved, err := sessions.Find(c, sess.ID)
		require.NoError(t, err)
		assert.Equal(t, sess.CartID, saved.CartID)
	})

	t.Run("SecondAddIncrementsQuantityInsteadOfAddingRow", func(t *testing.T) {
		product := seedProduct(t, c, queries, "Mouse", "19.99")
		sess := newSession(t, c, sessions)

		_, sess, err := svc.AddProduct(c, sess, product.ID)
		require.NoError(t, err)
		lineItem, sess, err := svc.AddProduct(c, sess, product.ID)
		require.NoError(t, err)

		assert.Equal(t, int32(2), lineItem.Quantity)

		rows, err := queries.FindLineItemsByCartId(c, *sess.CartID)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("DistinctProductsGetDistinctRows", func(t *testing.T) {
		first := seedProduct(t, c, queries, "Monitor", "199.99")
		second := seedProduct(t, c, queries, "Webcam", "59.99")
		sess := newSession(t, c, sessions)

		_, sess, err := svc.AddProduct(c, sess, first.ID)
		require.NoError(t, err)
		_, sess, err = svc.AddProduct(c, sess, second.ID)
		require.NoError(t, err)

		rows, err := queries.FindLineItemsByCartId(c, *sess.CartID)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("UnknownProductFails", func(t *testing.T) {
		sess := newSession(t, c, sessions)

		_, _, err := svc.AddProduct(c, sess, uuid.New())
		assert.ErrorIs(t, err, inErrors.ErrProductNotFound)
	})
}

func TestDeleteProduct(t *testing.T) {
	c := context.Background()
	pool, pgContainer, redisContainer, redisClient, queries, svc := setup(t)(c)
	defer teardown(t)(redisClient, pool, pgContainer, redisContainer)
	sessions := session.NewStore(redisClient)

	t.Run("DecrementKeepsRowAtZeroQuantityAndBelow", func(t *testing.T) {
		product := seedProduct(t, c, queries, "Desk", "250")
		sess := newSession(t, c, sessions)

		_, sess, err := svc.AddProduct(c, sess, product.ID)
		require.NoError(t, err)

		lineItem, err := svc.DeleteProduct(c, sess, product.ID)
		require.NoError(t, err)
		assert.Equal(t, int32(0), lineItem.Quantity)

		rows, err := queries.FindLineItemsByCartId(c, *sess.CartID)
		require.NoError(t, err)
		assert.Len(t, rows, 1)

		lineItem, err = svc.DeleteProduct(c, sess, product.ID)
		require.NoError(t, err)
		assert.Equal(t, int32(-1), lineItem.Quantity)

		rows, err = queries.FindLineItemsByCartId(c, *sess.CartID)
		require.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Equal(t, int32(-1), rows[0].Quantity)
	})

	t.Run("MissingLineItemFails", func(t *testing.T) {
		product := seedProduct(t, c, queries, "Chair", "120")
		other := seedProduct(t, c, queries, "Lamp", "35")
		sess := newSession(t, c, sessions)

		_, sess, err := svc.AddProduct(c, sess, product.ID)
		require.NoError(t, err)

		_, err = svc.DeleteProduct(c, sess, other.ID)
		assert.ErrorIs(t, err, inErrors.ErrLineItemNotFound)
	})

	t.Run("SessionWithoutCartFails", func(t *testing.T) {
		sess := newSession(t, c, sessions)

		_, err := svc.DeleteProduct(c, sess, uuid.New())
		assert.ErrorIs(t, err, inErrors.ErrCartNotFound)
	})
}

func TestFindCart(t *testing.T) {
	c := context.Background()
	pool, pgContainer, redisContainer, redisClient, queries, svc := setup(t)(c)
	defer teardown(t)(redisClient, pool, pgContainer, redisContainer)
	sessions := session.NewStore(redisClient)

	t.Run("TotalPriceSumsLinePrices", func(t *testing.T) {
		first := seedProduct(t, c, queries, "Notebook", "10")
		second := seedProduct(t, c, queries, "Pen", "5")
		sess := newSession(t, c, sessions)

		_, sess, err := svc.AddProduct(c, sess, first.ID)
		require.NoError(t, err)
		_, sess, err = svc.AddProduct(c, sess, first.ID)
		require.NoError(t, err)
		_, sess, err = svc.AddProduct(c, sess, second.ID)
		require.NoError(t, err)

		cart, err := svc.FindCart(c, sess)
		require.NoError(t, err)
		assert.Len(t, cart.LineItems, 2)
		assert.True(t, cart.TotalPrice.Equal(decimal.RequireFromString("25")))
	})

	t.Run("SessionWithoutCartYieldsEmptyCart", func(t *testing.T) {
		sess := newSession(t, c, sessions)

		cart, err := svc.FindCart(c, sess)
		require.NoError(t, err)
		assert.Empty(t, cart.LineItems)
		assert.True(t, cart.TotalPrice.IsZero())
	})
}
