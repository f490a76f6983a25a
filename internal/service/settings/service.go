package settings

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settingsRepo settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) *SettingsServiceImpl {
	return &SettingsServiceImpl{settingsRepo: settingsRepo}
}

// Get implements settings.Provider. Defaults apply until the row is saved.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.AdminSettings, error) {
	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.Defaults(), nil
		}
		return settings.AdminSettings{}, err
	}
	return current, nil
}

// GetSettings implements settings.SettingsService.
func (s *SettingsServiceImpl) GetSettings(ctx context.Context) (settings.SettingsResponse, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}
	return settings.NewSettingsResponse(current), nil
}

// UpdateSettings implements settings.SettingsService.
func (s *SettingsServiceImpl) UpdateSettings(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	current, err := s.Get(ctx)
	if err != nil {
		return settings.SettingsResponse{}, err
	}

	updated, err := s.settingsRepo.Upsert(ctx, req.Apply(current))
	if err != nil {
		return settings.SettingsResponse{}, err
	}

	slog.Info("Admin settings updated",
		"normal_hour_rate", updated.NormalHourRate.String(),
		"overtime_hour_rate", updated.OvertimeHourRate.String(),
		"overtime_threshold_hours", updated.OvertimeThresholdHours.String(),
	)
	return settings.NewSettingsResponse(updated), nil
}
