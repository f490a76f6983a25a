package memory

import (
	"context"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/settings"
)

type settingsRepository struct {
	store *Store
}

func NewSettingsRepository(store *Store) settings.SettingsRepository {
	return &settingsRepository{store: store}
}

// Get implements settings.SettingsRepository.
func (r *settingsRepository) Get(ctx context.Context) (settings.AdminSettings, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if r.store.settings == nil {
		return settings.AdminSettings{}, settings.ErrSettingsNotFound
	}
	return *r.store.settings, nil
}

// Upsert implements settings.SettingsRepository.
func (r *settingsRepository) Upsert(ctx context.Context, s settings.AdminSettings) (settings.AdminSettings, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	now := r.store.timestamp()
	s.UpdatedAt = &now
	r.store.settings = &s
	return s, nil
}
