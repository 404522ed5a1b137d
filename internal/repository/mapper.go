package repository

import (
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	cartResponse "github.com/hanifr/storefront/cart/pkg/response"
	orderResponse "github.com/hanifr/storefront/order/pkg/response"
	productResponse "github.com/hanifr/storefront/product/pkg/response"
)

func (p Product) Response() productResponse.Product {
	return productResponse.Product{
		ID:        p.ID,
		Name:      p.Name,
		Price:     decimal.NewFromBigInt(p.Price.Int, p.Price.Exp),
		CreatedAt: p.CreatedAt.Time,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (f FindLineItemsByCartIdRow) Response() cartResponse.LineItem {
	return cartResponse.LineItem{
		ID:          f.ID,
		CartID:      f.CartID,
		ProductID:   f.ProductID,
		ProductName: f.ProductName,
		Quantity:    f.Quantity,
		Price:       decimal.NewFromBigInt(f.ProductPrice.Int, f.ProductPrice.Exp),
	}
}

func (o OrderItem) Response() orderResponse.OrderItem {
	return orderResponse.OrderItem{
		ID:        o.ID,
		OrderID:   o.OrderID,
		ProductID: o.ProductID,
		Quantity:  o.Quantity,
		Price:     decimal.NewFromBigInt(o.Price.Int, o.Price.Exp),
	}
}

func NumericFromDecimal(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Exp:              d.Exponent(),
		InfinityModifier: pgtype.Finite,
		Int:              d.Coefficient(),
		NaN:              false,
		Valid:            true,
	}
}
