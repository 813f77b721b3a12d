package repository

import (
	"context"

	"litepos/internal/dto"
	"litepos/internal/infra"
	"litepos/internal/model"

	"github.com/google/uuid"
)

type UserRepository interface {
	// Login returns the active user whose stored hash equals pinHash, or nil.
	Login(ctx context.Context, pinHash string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	Create(ctx context.Context, in dto.CreateUserInput) (int64, error)
	Update(ctx context.Context, id int64, p dto.UserPatch) error
	SoftDelete(ctx context.Context, id int64) error
}

type userRepo struct{ gw *infra.Gateway }

func NewUserRepository(gw *infra.Gateway) UserRepository { return &userRepo{gw: gw} }

func (r *userRepo) Login(ctx context.Context, pinHash string) (*model.User, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return first[model.User](db.Where("pin_hash = ? AND is_active = ?", pinHash, true).Order("id"))
}

func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}
	var users []model.User
	err = db.Order("name").Find(&users).Error
	return users, err
}

func (r *userRepo) FindByID(ctx context.Context, id int64) (*model.User, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return first[model.User](db.Where("id = ?", id))
}

func (r *userRepo) Create(ctx context.Context, in dto.CreateUserInput) (int64, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return 0, err
	}
	role := in.Role
	if role == "" {
		role = model.RoleCashier
	}
	u := model.User{
		UUID:     uuid.NewString(),
		Name:     in.Name,
		Email:    in.Email,
		PINHash:  in.PINHash,
		Role:     role,
		IsActive: true,
	}
	if err := db.Create(&u).Error; err != nil {
		return 0, err
	}
	return u.ID, nil
}

func (r *userRepo) Update(ctx context.Context, id int64, p dto.UserPatch) error {
	return updateColumns(ctx, r.gw, &model.User{}, id, p.Columns())
}

func (r *userRepo) SoftDelete(ctx context.Context, id int64) error {
	return softDelete(ctx, r.gw, &model.User{}, id)
}
