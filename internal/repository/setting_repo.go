package repository

import (
	"context"
	"time"

	"litepos/internal/infra"
	"litepos/internal/model"
)

type SettingRepository interface {
	List(ctx context.Context) ([]model.Setting, error)
	Get(ctx context.Context, key string) (*model.Setting, error)
	// Update overwrites the stored text of an existing key; unknown keys are left alone.
	Update(ctx context.Context, key, value string) error
	ListByGroup(ctx context.Context, group string) ([]model.Setting, error)
}

type settingRepo struct{ gw *infra.Gateway }

func NewSettingRepository(gw *infra.Gateway) SettingRepository { return &settingRepo{gw: gw} }

func (r *settingRepo) List(ctx context.Context) ([]model.Setting, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}
	var settings []model.Setting
	err = db.Order("group_name, key").Find(&settings).Error
	return settings, err
}

func (r *settingRepo) Get(ctx context.Context, key string) (*model.Setting, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return first[model.Setting](db.Where("key = ?", key))
}

func (r *settingRepo) Update(ctx context.Context, key, value string) error {
	_, err := r.gw.Execute(ctx,
		"UPDATE settings SET value = ?, updated_at = ? WHERE key = ?",
		value, time.Now().UTC(), key)
	return err
}

func (r *settingRepo) ListByGroup(ctx context.Context, group string) ([]model.Setting, error) {
	db, err := r.gw.Conn(ctx)
	if err != nil {
		return nil, err
	}
	var settings []model.Setting
	err = db.Where("group_name = ?", group).Order("key").Find(&settings).Error
	return settings, err
}
