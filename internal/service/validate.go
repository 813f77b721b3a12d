package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// checkRequest runs the validate tags of req. The first failing field is
// wrapped in the sentinel registered for it in byField, or ErrInvalidRequest.
func checkRequest(req interface{}, byField map[string]error) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	fe := verrs[0]
	sentinel, ok := byField[fe.Field()]
	if !ok {
		sentinel = ErrInvalidRequest
	}
	return fmt.Errorf("%w: %s failed %s", sentinel, fe.Namespace(), fe.Tag())
}

var checkoutFieldErrors = map[string]error{
	"DiscountCents": ErrInvalidDiscount,
	"Payments":      ErrInsufficientPayment,
	"AmountCents":   ErrInsufficientPayment,
	"Method":        ErrInvalidPayment,
}

var refundFieldErrors = map[string]error{
	"OrderID":     ErrOrderNotFound,
	"Lines":       ErrInvalidRefundLine,
	"OrderItemID": ErrInvalidRefundLine,
	"Quantity":    ErrInvalidRefundLine,
	"AmountCents": ErrInvalidRefundLine,
}
