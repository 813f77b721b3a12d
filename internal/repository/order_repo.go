package repository

import (
	"context"
	"fmt"
	"strconv"

	"litepos/internal/dto"
	"litepos/internal/infra"
	"litepos/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

const (
	defaultOrderPrefix   = "ORD-"
	defaultOrderSequence = 1
)

type OrderRepository interface {
	List(ctx context.Context, f dto.OrderFilter) ([]model.Order, error)
	FindByID(ctx context.Context, id int64) (*model.Order, error)
	Items(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	// NextOrderNumber allocates prefix + zero-padded sequence and advances the
	// stored sequence. Concurrent callers never receive the same number.
	NextOrderNumber(ctx context.Context) (string, error)
	Create(ctx context.Context, in dto.CreateOrderInput) (int64, error)
	AddItem(ctx context.Context, in dto.AddOrderItemInput) (int64, error)
	Update(ctx context.Context, id int64, p dto.OrderPatch) error
	Complete(ctx context.Context, id int64) error
	Void(ctx context.Context, id int64) error
	MarkRefunded(ctx context.Context, id int64) error
	// UpdateCustomer reassigns the order; nil clears the customer.
	UpdateCustomer(ctx context.Context, id int64, customerID *int64) error
	SoftDelete(ctx context.Context, id int64) error
}

type orderRepo struct{ gw *infra.Gateway }

func NewOrderRepository(gw *infra.Gateway) OrderRepository { return &orderRepo{gw: gw} }

func (r *orderRepo) List(ctx context.Context, f dto.OrderFilter) ([]model.Order, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}

	q := db.Model(&model.Order{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.CustomerID != nil {
		q = q.Where("customer_id = ?", *f.CustomerID)
	}
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	from, to := dayBounds(f.DateFrom, f.DateTo)
	if from != nil {
		q = q.Where("created_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("created_at < ?", *to)
	}

	var orders []model.Order
	err = q.Order("created_at DESC, id DESC").Find(&orders).Error
	return orders, err
}

func (r *orderRepo) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return first[model.Order](db.Where("id = ?", id))
}

func (r *orderRepo) Items(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}
	var items []model.OrderItem
	err = db.Where("order_id = ?", orderID).Order("id").Find(&items).Error
	return items, err
}

func (r *orderRepo) NextOrderNumber(ctx context.Context) (string, error) {
	var number string
	err := r.gw.WithTransaction(ctx, func(ctx context.Context) error {
		db, err := r.gw.Conn(ctx)
		if err != nil {
			return err
		}

		var rows []model.Setting
		if err := db.Where("key IN ?", []string{model.KeyOrderNumberPrefix, model.KeyNextOrderNumber}).
			Find(&rows).Error; err != nil {
			return err
		}
		prefix, seq := defaultOrderPrefix, defaultOrderSequence
		for _, s := range rows {
			switch s.Key {
			case model.KeyOrderNumberPrefix:
				prefix = s.Value
			case model.KeyNextOrderNumber:
				seq = s.Int()
			}
		}

		next := model.Setting{
			Key:       model.KeyNextOrderNumber,
			Value:     strconv.Itoa(seq + 1),
			ValueType: model.SettingInteger,
			GroupName: "orders",
		}
		err = db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&next).Error
		if err != nil {
			return err
		}

		number = fmt.Sprintf("%s%05d", prefix, seq)
		return nil
	})
	if err != nil {
		return "", err
	}
	return number, nil
}

func (r *orderRepo) Create(ctx context.Context, in dto.CreateOrderInput) (int64, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return 0, err
	}
	status := in.Status
	if status == "" {
		status = model.OrderDraft
	}
	o := model.Order{
		UUID:          uuid.NewString(),
		OrderNumber:   in.OrderNumber,
		Status:        status,
		CustomerID:    in.CustomerID,
		UserID:        in.UserID,
		SubtotalCents: in.SubtotalCents,
		DiscountCents: in.DiscountCents,
		TaxTotalCents: in.TaxTotalCents,
		TotalCents:    in.TotalCents,
		Notes:         in.Notes,
	}
	if err := db.Create(&o).Error; err != nil {
		return 0, err
	}
	return o.ID, nil
}

func (r *orderRepo) AddItem(ctx context.Context, in dto.AddOrderItemInput) (int64, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return 0, err
	}
	item := model.OrderItem{
		UUID:              uuid.NewString(),
		OrderID:           in.OrderID,
		ProductID:         in.ProductID,
		ProductName:       in.ProductName,
		ProductSKU:        in.ProductSKU,
		Quantity:          in.Quantity,
		UnitPriceCents:    in.UnitPriceCents,
		TaxRateBps:        in.TaxRateBps,
		LineSubtotalCents: in.LineSubtotalCents,
		LineTaxCents:      in.LineTaxCents,
		LineTotalCents:    in.LineTotalCents,
		Notes:             in.Notes,
	}
	if err := db.Create(&item).Error; err != nil {
		return 0, err
	}
	return item.ID, nil
}

func (r *orderRepo) Update(ctx context.Context, id int64, p dto.OrderPatch) error {
	return updateColumns(ctx, r.gw, &model.Order{}, id, p.Columns())
}

func (r *orderRepo) Complete(ctx context.Context, id int64) error {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return err
	}
	return db.Model(&model.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":       model.OrderCompleted,
		"completed_at": db.NowFunc(),
	}).Error
}

func (r *orderRepo) Void(ctx context.Context, id int64) error {
	return r.setStatus(ctx, id, model.OrderVoid)
}

func (r *orderRepo) MarkRefunded(ctx context.Context, id int64) error {
	return r.setStatus(ctx, id, model.OrderRefunded)
}

func (r *orderRepo) setStatus(ctx context.Context, id int64, status string) error {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return err
	}
	return db.Model(&model.Order{}).Where("id = ?", id).Update("status", status).Error
}

func (r *orderRepo) UpdateCustomer(ctx context.Context, id int64, customerID *int64) error {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return err
	}
	var v interface{}
	if customerID != nil {
		v = *customerID
	}
	return db.Model(&model.Order{}).Where("id = ?", id).Update("customer_id", v).Error
}

func (r *orderRepo) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.gw, &model.Order{}, id)
}
