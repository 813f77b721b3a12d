package service

import (
	"context"

	"litepos/internal/cart"
	"litepos/internal/dto"
	"litepos/internal/model"
	"litepos/internal/money"
	"litepos/internal/repository"

	"github.com/rs/zerolog/log"
)

type CheckoutService interface {
	// Checkout records the cart as a completed order and clears the cart.
	Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResult, error)
}

type checkoutService struct {
	tx       Transactor
	orders   repository.OrderRepository
	payments repository.PaymentRepository
	products repository.ProductRepository
	cart     *cart.Cart
}

func NewCheckoutService(
	tx Transactor,
	orders repository.OrderRepository,
	payments repository.PaymentRepository,
	products repository.ProductRepository,
	c *cart.Cart,
) CheckoutService {
	return &checkoutService{tx: tx, orders: orders, payments: payments, products: products, cart: c}
}

type pricedLine struct {
	item     cart.Item
	subtotal int64
	tax      int64
}

// ── Checkout ──────────────────────────────────────────────────────────────────
//   1. price every line with cart.Line, the same formula the cart displays
//   2. validate tags, then discount and tender against the priced cart
//   3. in one transaction: order number, header, item snapshots, payments,
//      completion, stock decrement

func (s *checkoutService) Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResult, error) {
	items := s.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if err := checkRequest(req, checkoutFieldErrors); err != nil {
		return nil, err
	}

	lines := make([]pricedLine, 0, len(items))
	var subtotal, taxTotal int64
	for _, it := range items {
		sub, tax := cart.Line(it.Product.SalePriceCents, it.Quantity, it.Product.TaxRateBps)
		lines = append(lines, pricedLine{item: it, subtotal: sub, tax: tax})
		subtotal += sub
		taxTotal += tax
	}

	if req.DiscountCents > subtotal {
		return nil, ErrInvalidDiscount
	}
	total := subtotal - req.DiscountCents + taxTotal

	var paid int64
	for _, p := range req.Payments {
		paid += p.AmountCents
	}
	if paid < total {
		return nil, ErrInsufficientPayment
	}
	change := paid - total

	var customerID *int64
	if c := s.cart.Customer(); c != nil {
		id := c.ID
		customerID = &id
	}
	var notes *string
	if n := s.cart.Notes(); n != "" {
		notes = &n
	}

	res := &dto.CheckoutResult{
		SubtotalCents: subtotal,
		DiscountCents: req.DiscountCents,
		TaxTotalCents: taxTotal,
		TotalCents:    total,
		PaidCents:     paid,
		ChangeCents:   change,
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		number, err := s.orders.NextOrderNumber(ctx)
		if err != nil {
			return err
		}
		log.Debug().Str("order_number", number).Msg("order number allocated")

		orderID, err := s.orders.Create(ctx, dto.CreateOrderInput{
			OrderNumber:   number,
			Status:        model.OrderDraft,
			CustomerID:    customerID,
			UserID:        req.UserID,
			SubtotalCents: subtotal,
			DiscountCents: req.DiscountCents,
			TaxTotalCents: taxTotal,
			TotalCents:    total,
			Notes:         notes,
		})
		if err != nil {
			return err
		}

		for _, l := range lines {
			p := l.item.Product
			productID := p.ID
			var itemNotes *string
			if l.item.Notes != "" {
				n := l.item.Notes
				itemNotes = &n
			}
			if _, err := s.orders.AddItem(ctx, dto.AddOrderItemInput{
				OrderID:           orderID,
				ProductID:         &productID,
				ProductName:       p.Name,
				ProductSKU:        p.SKU,
				Quantity:          l.item.Quantity,
				UnitPriceCents:    p.SalePriceCents,
				TaxRateBps:        p.TaxRateBps,
				LineSubtotalCents: l.subtotal,
				LineTaxCents:      l.tax,
				LineTotalCents:    l.subtotal + l.tax,
				Notes:             itemNotes,
			}); err != nil {
				return err
			}
			if err := s.products.AdjustStock(ctx, productID, -l.item.Quantity); err != nil {
				return err
			}
		}

		// change is handed back on the last tender
		for i, p := range req.Payments {
			var changeCents int64
			if i == len(req.Payments)-1 {
				changeCents = change
			}
			if _, err := s.payments.Add(ctx, dto.AddPaymentInput{
				OrderID:         orderID,
				Method:          p.Method,
				AmountCents:     p.AmountCents,
				ChangeCents:     changeCents,
				ReferenceNumber: p.ReferenceNumber,
			}); err != nil {
				return err
			}
		}

		if err := s.orders.Complete(ctx, orderID); err != nil {
			return err
		}
		res.OrderID = orderID
		res.OrderNumber = number
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.cart.Clear()
	log.Info().
		Str("order_number", res.OrderNumber).
		Int64("order_id", res.OrderID).
		Str("total", money.FormatCents(res.TotalCents)).
		Str("change", money.FormatCents(res.ChangeCents)).
		Msg("checkout completed")
	return res, nil
}
