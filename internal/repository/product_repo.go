package repository

import (
	"context"
	"time"

	"litepos/internal/dto"
	"litepos/internal/infra"
	"litepos/internal/model"

	"github.com/google/uuid"
)

type ProductRepository interface {
	List(ctx context.Context, f dto.ProductFilter) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	// FindByBarcode only matches active products.
	FindByBarcode(ctx context.Context, barcode string) (*model.Product, error)
	Create(ctx context.Context, in dto.CreateProductInput) (int64, error)
	Update(ctx context.Context, id int64, p dto.ProductPatch) error
	SoftDelete(ctx context.Context, id int64) error
	// AdjustStock adds delta (negative to decrement) to stock_quantity.
	AdjustStock(ctx context.Context, id int64, delta int) error
	LowStock(ctx context.Context) ([]model.Product, error)
}

type productRepo struct{ gw *infra.Gateway }

func NewProductRepository(gw *infra.Gateway) ProductRepository { return &productRepo{gw: gw} }

func (r *productRepo) List(ctx context.Context, f dto.ProductFilter) ([]model.Product, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}

	q := db.Model(&model.Product{})
	if !f.IncludeInactive {
		q = q.Where("is_active = ?", true)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.Search != "" {
		term := "%" + f.Search + "%"
		q = q.Where("(name LIKE ? OR sku LIKE ? OR barcode LIKE ?)", term, term, term)
	}

	var products []model.Product
	err = q.Order("sort_order, name").Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return first[model.Product](db.Where("id = ?", id))
}

func (r *productRepo) FindByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return first[model.Product](db.Where("barcode = ? AND is_active = ?", barcode, true).Order("id"))
}

func (r *productRepo) Create(ctx context.Context, in dto.CreateProductInput) (int64, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return 0, err
	}
	p := model.Product{
		UUID:              uuid.NewString(),
		Name:              in.Name,
		Description:       in.Description,
		SKU:               in.SKU,
		Barcode:           in.Barcode,
		CategoryID:        in.CategoryID,
		CostPriceCents:    in.CostPriceCents,
		SalePriceCents:    in.SalePriceCents,
		TaxRateBps:        in.TaxRateBps,
		StockQuantity:     in.StockQuantity,
		LowStockThreshold: in.LowStockThreshold,
		ImagePath:         in.ImagePath,
		IsActive:          in.IsActive,
		SortOrder:         in.SortOrder,
	}
	if err := db.Create(&p).Error; err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (r *productRepo) Update(ctx context.Context, id int64, p dto.ProductPatch) error {
	return updateColumns(ctx, r.gw, &model.Product{}, id, p.Columns())
}

func (r *productRepo) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.gw, &model.Product{}, id)
}

func (r *productRepo) AdjustStock(ctx context.Context, id int64, delta int) error {
	_, err := r.gw.Execute(ctx,
		"UPDATE products SET stock_quantity = stock_quantity + ?, updated_at = ? WHERE id = ? AND deleted_at IS NULL",
		delta, time.Now().UTC(), id)
	return err
}

func (r *productRepo) LowStock(ctx context.Context) ([]model.Product, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}
	var products []model.Product
	err = db.Where("is_active = ? AND stock_quantity <= low_stock_threshold", true).
		Order("stock_quantity, name").
		Find(&products).Error
	return products, err
}
