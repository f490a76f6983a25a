package settings

import "context"

// Provider supplies the fallback rates consumed by the salary calculator.
type Provider interface {
	Get(ctx context.Context) (AdminSettings, error)
}

type SettingsService interface {
	Provider
	GetSettings(ctx context.Context) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}
