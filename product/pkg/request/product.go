package request

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	Name  string          `validate:"required" json:"name"`
	Price decimal.Decimal `validate:"required" json:"price"`
}
