package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hanifr/storefront/cart/pkg/response"
)

func TestTotalPrice(t *testing.T) {
	t.Parallel()

	cartID := uuid.New()
	newItem := func(price string, quantity int32) response.LineItem {
		return response.LineItem{
			ID:        uuid.New(),
			CartID:    cartID,
			ProductID: uuid.New(),
			Quantity:  quantity,
			Price:     decimal.RequireFromString(price),
		}
	}

	t.Run("SumsQuantityTimesUnitPrice", func(t *testing.T) {
		t.Parallel()

		lineItems := []response.LineItem{newItem("10", 2), newItem("5", 1)}
		assert.True(t, totalPrice(lineItems).Equal(decimal.RequireFromString("25")))
	})

	t.Run("EmptyCartTotalsZero", func(t *testing.T) {
		t.Parallel()

		assert.True(t, totalPrice(nil).IsZero())
		assert.True(t, totalPrice([]response.LineItem{}).IsZero())
	})

	t.Run("KeepsDecimalPrecision", func(t *testing.T) {
		t.Parallel()

		lineItems := []response.LineItem{newItem("19.99", 3), newItem("0.01", 1)}
		assert.True(t, totalPrice(lineItems).Equal(decimal.RequireFromString("59.98")))
	})

	t.Run("ZeroQuantityContributesNothing", func(t *testing.T) {
		t.Parallel()

		lineItems := []response.LineItem{newItem("10", 0), newItem("5", 2)}
		assert.True(t, totalPrice(lineItems).Equal(decimal.RequireFromString("10")))
	})
}

func TestLinePrice(t *testing.T) {
	t.Parallel()

	lineItem := response.LineItem{Quantity: 4, Price: decimal.RequireFromString("2.50")}
	assert.True(t, lineItem.LinePrice().Equal(decimal.RequireFromString("10")))
}
