package repository

import (
	"context"

	"litepos/internal/dto"
	"litepos/internal/infra"
	"litepos/internal/model"

	"github.com/google/uuid"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	Create(ctx context.Context, in dto.CreateCategoryInput) (int64, error)
	Update(ctx context.Context, id int64, p dto.CategoryPatch) error
	SoftDelete(ctx context.Context, id int64) error
}

type categoryRepo struct{ gw *infra.Gateway }

func NewCategoryRepository(gw *infra.Gateway) CategoryRepository { return &categoryRepo{gw: gw} }

func (r *categoryRepo) List(ctx context.Context) ([]model.Category, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}
	var cats []model.Category
	err = db.Order("sort_order, name").Find(&cats).Error
	return cats, err
}

func (r *categoryRepo) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return first[model.Category](db.Where("id = ?", id))
}

func (r *categoryRepo) Create(ctx context.Context, in dto.CreateCategoryInput) (int64, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return 0, err
	}
	c := model.Category{
		UUID:        uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Color:       model.DefaultCategoryColor,
		Icon:        in.Icon,
	}
	if in.Color != nil {
		c.Color = *in.Color
	}
	if in.SortOrder != nil {
		c.SortOrder = *in.SortOrder
	}
	if err := db.Create(&c).Error; err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (r *categoryRepo) Update(ctx context.Context, id int64, p dto.CategoryPatch) error {
	return updateColumns(ctx, r.gw, &model.Category{}, id, p.Columns())
}

func (r *categoryRepo) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.gw, &model.Category{}, id)
}
