package request

import (
	"github.com/google/uuid"
)

type AddLineItem struct {
	ProductID uuid.UUID `validate:"required" json:"product_id"`
}
