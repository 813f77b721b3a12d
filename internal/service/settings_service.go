package service

import (
	"context"

	"litepos/internal/repository"
	"litepos/internal/state"
)

// SettingsService keeps the settings cache in step with storage.
type SettingsService interface {
	Load(ctx context.Context) error
	// Update persists value and then refreshes the cached copy.
	Update(ctx context.Context, key, value string) error
}

type settingsService struct {
	repo  repository.SettingRepository
	cache *state.SettingsCache
}

func NewSettingsService(repo repository.SettingRepository, cache *state.SettingsCache) SettingsService {
	return &settingsService{repo: repo, cache: cache}
}

func (s *settingsService) Load(ctx context.Context) error {
	settings, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	s.cache.Load(settings)
	return nil
}

func (s *settingsService) Update(ctx context.Context, key, value string) error {
	if err := s.repo.Update(ctx, key, value); err != nil {
		return err
	}
	s.cache.Update(key, value)
	return nil
}
