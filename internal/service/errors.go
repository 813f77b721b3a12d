package service

import (
	"context"
	"errors"
)

var (
	ErrInvalidPIN          = errors.New("invalid PIN")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInvalidDiscount     = errors.New("discount must be between zero and the subtotal")
	ErrInsufficientPayment = errors.New("payments do not cover the order total")
	ErrInvalidPayment      = errors.New("invalid payment")
	ErrOrderNotFound       = errors.New("order not found")
	ErrOrderNotRefundable  = errors.New("order cannot be refunded")
	ErrInvalidRefundLine   = errors.New("invalid refund line")
	ErrInvalidRequest      = errors.New("invalid request")
)

// Transactor runs fn in a transaction carried by the context it receives.
// *infra.Gateway implements it.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
