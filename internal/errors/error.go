package errors

import (
	"errors"
)

var (
	ErrCartNotFound       = errors.New("cart not found")
	ErrEmptyCart          = errors.New("cart has no line items")
	ErrInvalidCredentials = errors.New("invalid user/password combination")
	ErrLineItemNotFound   = errors.New("line item not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
)
