package repository

import (
	"context"

	"litepos/internal/dto"
	"litepos/internal/infra"
	"litepos/internal/model"

	"github.com/google/uuid"
)

type CustomerRepository interface {
	// List matches search as a substring of first name, last name, email or phone.
	List(ctx context.Context, search string) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
	Create(ctx context.Context, in dto.CreateCustomerInput) (int64, error)
	Update(ctx context.Context, id int64, p dto.CustomerPatch) error
	SoftDelete(ctx context.Context, id int64) error
}

type customerRepo struct{ gw *infra.Gateway }

func NewCustomerRepository(gw *infra.Gateway) CustomerRepository { return &customerRepo{gw: gw} }

func (r *customerRepo) List(ctx context.Context, search string) ([]model.Customer, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}
	q := db.Model(&model.Customer{})
	if search != "" {
		term := "%" + search + "%"
		q = q.Where("(first_name LIKE ? OR last_name LIKE ? OR email LIKE ? OR phone LIKE ?)", term, term, term, term)
	}
	var customers []model.Customer
	err = q.Order("last_name, first_name").Find(&customers).Error
	return customers, err
}

func (r *customerRepo) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return first[model.Customer](db.Where("id = ?", id))
}

func (r *customerRepo) Create(ctx context.Context, in dto.CreateCustomerInput) (int64, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return 0, err
	}
	c := model.Customer{
		UUID:                 uuid.NewString(),
		FirstName:            in.FirstName,
		LastName:             in.LastName,
		Email:                in.Email,
		Phone:                in.Phone,
		BillingAddressLine1:  in.BillingAddressLine1,
		BillingAddressLine2:  in.BillingAddressLine2,
		BillingCity:          in.BillingCity,
		BillingState:         in.BillingState,
		BillingZip:           in.BillingZip,
		ShippingAddressLine1: in.ShippingAddressLine1,
		ShippingAddressLine2: in.ShippingAddressLine2,
		ShippingCity:         in.ShippingCity,
		ShippingState:        in.ShippingState,
		ShippingZip:          in.ShippingZip,
		Notes:                in.Notes,
	}
	if err := db.Create(&c).Error; err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (r *customerRepo) Update(ctx context.Context, id int64, p dto.CustomerPatch) error {
	return updateColumns(ctx, r.gw, &model.Customer{}, id, p.Columns())
}

func (r *customerRepo) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.gw, &model.Customer{}, id)
}
