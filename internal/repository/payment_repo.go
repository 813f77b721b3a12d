package repository

import (
	"context"

	"litepos/internal/dto"
	"litepos/internal/infra"
	"litepos/internal/model"

	"github.com/google/uuid"
)

type PaymentRepository interface {
	Add(ctx context.Context, in dto.AddPaymentInput) (int64, error)
	ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error)
}

type paymentRepo struct{ gw *infra.Gateway }

func NewPaymentRepository(gw *infra.Gateway) PaymentRepository { return &paymentRepo{gw: gw} }

func (r *paymentRepo) Add(ctx context.Context, in dto.AddPaymentInput) (int64, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return 0, err
	}
	p := model.Payment{
		UUID:            uuid.NewString(),
		OrderID:         in.OrderID,
		Method:          in.Method,
		AmountCents:     in.AmountCents,
		ChangeCents:     in.ChangeCents,
		ReferenceNumber: in.ReferenceNumber,
	}
	if err := db.Create(&p).Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (r *paymentRepo) ListByOrder(ctx context.Context, orderID int64) ([]model.Payment, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}
	var payments []model.Payment
	err = db.Where("order_id = ?", orderID).Order("id").Find(&payments).Error
	return payments, err
}
