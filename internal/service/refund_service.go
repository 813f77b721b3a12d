package service

import (
	"context"
	"fmt"

	"litepos/internal/dto"
	"litepos/internal/model"
	"litepos/internal/money"
	"litepos/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type RefundService interface {
	// Refund returns money for some or all lines of a completed order.
	Refund(ctx context.Context, req dto.RefundRequest) (*dto.RefundResult, error)
}

type refundService struct {
	tx       Transactor
	orders   repository.OrderRepository
	refunds  repository.RefundRepository
	products repository.ProductRepository
}

func NewRefundService(
	tx Transactor,
	orders repository.OrderRepository,
	refunds repository.RefundRepository,
	products repository.ProductRepository,
) RefundService {
	return &refundService{tx: tx, orders: orders, refunds: refunds, products: products}
}

// prorate returns the share of lineTotal that qty of itemQty units represents.
func prorate(lineTotal int64, qty, itemQty int) int64 {
	return decimal.NewFromInt(lineTotal).
		Mul(decimal.NewFromInt(int64(qty))).
		Div(decimal.NewFromInt(int64(itemQty))).
		Round(0).
		IntPart()
}

// discountShares spreads the order discount over items in proportion to their
// subtotal, in item order. Shares sum to discount and never exceed a subtotal.
func discountShares(items []model.OrderItem, discount int64) map[int64]int64 {
	shares := make(map[int64]int64, len(items))
	var rest int64
	for _, it := range items {
		rest += it.LineSubtotalCents
	}
	left := discount
	for _, it := range items {
		if rest <= 0 {
			break
		}
		share := decimal.NewFromInt(left).
			Mul(decimal.NewFromInt(it.LineSubtotalCents)).
			Div(decimal.NewFromInt(rest)).
			Round(0).
			IntPart()
		shares[it.ID] = share
		left -= share
		rest -= it.LineSubtotalCents
	}
	return shares
}

type refundLine struct {
	item    model.OrderItem
	qty     int
	amount  int64
	restock bool
}

func (s *refundService) Refund(ctx context.Context, req dto.RefundRequest) (*dto.RefundResult, error) {
	if err := checkRequest(req, refundFieldErrors); err != nil {
		return nil, err
	}

	res := &dto.RefundResult{}
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		order, err := s.orders.FindByID(ctx, req.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return ErrOrderNotFound
		}
		// a partially refunded order stays refundable for what is left
		if order.Status != model.OrderCompleted && order.Status != model.OrderRefunded {
			return ErrOrderNotRefundable
		}

		items, err := s.orders.Items(ctx, order.ID)
		if err != nil {
			return err
		}
		byID := make(map[int64]model.OrderItem, len(items))
		for _, it := range items {
			byID[it.ID] = it
		}
		shares := discountShares(items, order.DiscountCents)
		refunded, err := s.refunds.RefundedByItem(ctx, order.ID)
		if err != nil {
			return err
		}

		lines := make([]refundLine, 0, len(req.Lines))
		var total int64
		for _, l := range req.Lines {
			item, ok := byID[l.OrderItemID]
			if !ok {
				return fmt.Errorf("%w: item %d is not part of order %d", ErrInvalidRefundLine, l.OrderItemID, order.ID)
			}
			done := refunded[item.ID]
			if done.Quantity+l.Quantity > item.Quantity {
				return fmt.Errorf("%w: quantity %d exceeds what is left on item %d", ErrInvalidRefundLine, l.Quantity, item.ID)
			}

			// what the customer actually paid for the line, less earlier refunds
			net := item.LineTotalCents - shares[item.ID]
			left := net - done.AmountCents

			var amount int64
			switch {
			case l.AmountCents != nil:
				if *l.AmountCents > left {
					return fmt.Errorf("%w: amount %d exceeds the %d left on item %d", ErrInvalidRefundLine, *l.AmountCents, left, item.ID)
				}
				amount = *l.AmountCents
			case done.Quantity+l.Quantity == item.Quantity:
				// the last units take whatever is left
				amount = left
			default:
				amount = min(prorate(net, l.Quantity, item.Quantity), left)
			}

			refunded[item.ID] = dto.RefundedItem{
				OrderItemID: item.ID,
				Quantity:    done.Quantity + l.Quantity,
				AmountCents: done.AmountCents + amount,
			}
			total += amount
			lines = append(lines, refundLine{item: item, qty: l.Quantity, amount: amount, restock: l.Restock})
		}

		refundID, err := s.refunds.Create(ctx, dto.CreateRefundInput{
			OrderID:          order.ID,
			UserID:           req.UserID,
			TotalRefundCents: total,
			Reason:           req.Reason,
		})
		if err != nil {
			return err
		}

		for _, l := range lines {
			if _, err := s.refunds.AddItem(ctx, dto.AddRefundItemInput{
				RefundID:          refundID,
				OrderItemID:       l.item.ID,
				Quantity:          l.qty,
				RefundAmountCents: l.amount,
				Restock:           l.restock,
			}); err != nil {
				return err
			}
			if !l.restock || l.item.ProductID == nil {
				continue
			}
			p, err := s.products.FindByID(ctx, *l.item.ProductID)
			if err != nil {
				return err
			}
			if p == nil {
				continue
			}
			if err := s.products.AdjustStock(ctx, p.ID, l.qty); err != nil {
				return err
			}
		}

		if err := s.orders.MarkRefunded(ctx, order.ID); err != nil {
			return err
		}
		res.RefundID = refundID
		res.TotalRefundCents = total
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Int64("order_id", req.OrderID).
		Int64("refund_id", res.RefundID).
		Str("total_refund", money.FormatCents(res.TotalRefundCents)).
		Msg("refund recorded")
	return res, nil
}
