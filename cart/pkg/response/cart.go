package response

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Cart struct {
	ID         uuid.UUID       `json:"id"`
	LineItems  []LineItem      `json:"line_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

// LineItem is one product's presence in a cart. Price is the unit price of
// the referenced product at read time.
type LineItem struct {
	ID          uuid.UUID       `json:"id"`
	CartID      uuid.UUID       `json:"cart_id"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int32           `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

func (l LineItem) LinePrice() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt32(l.Quantity))
}

func (l LineItem) MarshalJSON() ([]byte, error) {
	type L LineItem
	return json.Marshal(struct {
		L
		LinePrice decimal.Decimal `json:"line_price"`
	}{L(l), l.LinePrice()})
}
