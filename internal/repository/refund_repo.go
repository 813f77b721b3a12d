package repository

import (
	"context"

	"litepos/internal/dto"
	"litepos/internal/infra"
	"litepos/internal/model"

	"github.com/google/uuid"
)

type RefundRepository interface {
	// ListByOrder returns the newest refund first.
	ListByOrder(ctx context.Context, orderID int64) ([]model.Refund, error)
	Items(ctx context.Context, refundID int64) ([]model.RefundItem, error)
	Create(ctx context.Context, in dto.CreateRefundInput) (int64, error)
	AddItem(ctx context.Context, in dto.AddRefundItemInput) (int64, error)
	// RefundedByItem sums refunded quantity and amount per order item of an
	// order, keyed by order item id.
	RefundedByItem(ctx context.Context, orderID int64) (map[int64]dto.RefundedItem, error)
}

type refundRepo struct{ gw *infra.Gateway }

func NewRefundRepository(gw *infra.Gateway) RefundRepository { return &refundRepo{gw: gw} }

func (r *refundRepo) ListByOrder(ctx context.Context, orderID int64) ([]model.Refund, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}
	var refunds []model.Refund
	err = db.Where("order_id = ?", orderID).Order("created_at DESC, id DESC").Find(&refunds).Error
	return refunds, err
}

func (r *refundRepo) Items(ctx context.Context, refundID int64) ([]model.RefundItem, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}
	var items []model.RefundItem
	err = db.Where("refund_id = ?", refundID).Order("id").Find(&items).Error
	return items, err
}

func (r *refundRepo) Create(ctx context.Context, in dto.CreateRefundInput) (int64, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return 0, err
	}
	ref := model.Refund{
		UUID:             uuid.NewString(),
		OrderID:          in.OrderID,
		UserID:           in.UserID,
		TotalRefundCents: in.TotalRefundCents,
		Reason:           in.Reason,
	}
	if err := db.Create(&ref).Error; err != nil {
		return 0, err
	}
	return ref.ID, nil
}

func (r *refundRepo) AddItem(ctx context.Context, in dto.AddRefundItemInput) (int64, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return 0, err
	}
	item := model.RefundItem{
		UUID:              uuid.NewString(),
		RefundID:          in.RefundID,
		OrderItemID:       in.OrderItemID,
		Quantity:          in.Quantity,
		RefundAmountCents: in.RefundAmountCents,
		Restock:           in.Restock,
	}
	if err := db.Create(&item).Error; err != nil {
		return 0, err
	}
	return item.ID, nil
}

func (r *refundRepo) RefundedByItem(ctx context.Context, orderID int64) (map[int64]dto.RefundedItem, error) {
	rows, err := infra.Select[dto.RefundedItem](ctx, r.gw, `
		SELECT ri.order_item_id,
		       SUM(ri.quantity) AS quantity,
		       SUM(ri.refund_amount_cents) AS amount_cents
		FROM refund_items ri
		JOIN refunds rf ON rf.id = ri.refund_id
		WHERE rf.order_id = ?
		GROUP BY ri.order_item_id`, orderID)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]dto.RefundedItem, len(rows))
	for _, row := range rows {
		out[row.OrderItemID] = row
	}
	return out, nil
}
