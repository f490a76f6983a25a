package settings

import "context"

type SettingsRepository interface {
	// Get returns ErrSettingsNotFound while the singleton row has never been saved
	Get(ctx context.Context) (AdminSettings, error)

	// Upsert writes the singleton row
	Upsert(ctx context.Context, settings AdminSettings) (AdminSettings, error)
}
