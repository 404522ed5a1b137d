package service

import (
	"github.com/shopspring/decimal"

	"github.com/hanifr/storefront/cart/pkg/response"
	"github.com/hanifr/storefront/internal/repository"
)

func newLineItem(li repository.LineItem, product repository.Product) response.LineItem {
	return response.LineItem{
		ID:          li.ID,
		CartID:      li.CartID,
		ProductID:   li.ProductID,
		ProductName: product.Name,
		Quantity:    li.Quantity,
		Price:       decimal.NewFromBigInt(product.Price.Int, product.Price.Exp),
	}
}

func mapLineItems(rows []repository.FindLineItemsByCartIdRow) []response.LineItem {
	lineItems := make([]response.LineItem, len(rows))
	for i, row := range rows {
		lineItems[i] = row.Response()
	}
	return lineItems
}

// totalPrice sums quantity x unit price over the cart's line items. An empty
// cart totals zero.
func totalPrice(lineItems []response.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, li := range lineItems {
		total = total.Add(li.LinePrice())
	}
	return total
}

func emptyCart() response.Cart {
	return response.Cart{LineItems: []response.LineItem{}, TotalPrice: decimal.Zero}
}
