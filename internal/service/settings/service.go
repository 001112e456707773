package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/pointage/timeclock-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func NewSettingsService(settingsRepository settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{
		SettingsRepository: settingsRepository,
	}
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.SettingsResponse, error) {
	current, err := s.current(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}
	return settings.ToSettingsResponse(current), nil
}

// Update implements settings.SettingsService.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	current, err := s.current(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}

	if req.AppName != nil {
		current.AppName = *req.AppName
	}
	if req.AppLogo != nil {
		current.AppLogo = *req.AppLogo
	}
	if req.Theme != nil {
		current.Theme = *req.Theme
	}

	saved, err := s.SettingsRepository.Upsert(ctx, current)
	if err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to save app settings: %w", err)
	}

	return settings.ToSettingsResponse(saved), nil
}

func (s *SettingsServiceImpl) current(ctx context.Context) (settings.AppSettings, error) {
	current, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.Defaults(), nil
		}
		return settings.AppSettings{}, fmt.Errorf("failed to get app settings: %w", err)
	}
	return current, nil
}
