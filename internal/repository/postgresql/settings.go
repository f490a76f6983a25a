package postgresql

import (
	"context"

	"github.com/cmlabs-hris/payroll-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/payroll-backend-go/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// Get implements settings.SettingsRepository.
func (s *settingsRepositoryImpl) Get(ctx context.Context) (settings.AdminSettings, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT normal_hour_rate, overtime_hour_rate, overtime_threshold_hours,
			allow_task_overtime_factor, updated_at
		FROM admin_settings
		WHERE id = 1
	`
	var st settings.AdminSettings
	err := q.QueryRow(ctx, query).Scan(
		&st.NormalHourRate, &st.OvertimeHourRate, &st.OvertimeThresholdHours,
		&st.AllowTaskOvertimeFactor, &st.UpdatedAt,
	)
	if err != nil {
		return settings.AdminSettings{}, notFound(err, settings.ErrSettingsNotFound)
	}
	return st, nil
}

// Upsert implements settings.SettingsRepository.
func (s *settingsRepositoryImpl) Upsert(ctx context.Context, st settings.AdminSettings) (settings.AdminSettings, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO admin_settings (
			id, normal_hour_rate, overtime_hour_rate, overtime_threshold_hours,
			allow_task_overtime_factor, updated_at
		) VALUES (1, $1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE SET
			normal_hour_rate = EXCLUDED.normal_hour_rate,
			overtime_hour_rate = EXCLUDED.overtime_hour_rate,
			overtime_threshold_hours = EXCLUDED.overtime_threshold_hours,
			allow_task_overtime_factor = EXCLUDED.allow_task_overtime_factor,
			updated_at = NOW()
		RETURNING normal_hour_rate, overtime_hour_rate, overtime_threshold_hours,
			allow_task_overtime_factor, updated_at
	`
	var saved settings.AdminSettings
	err := q.QueryRow(ctx, query,
		st.NormalHourRate, st.OvertimeHourRate, st.OvertimeThresholdHours, st.AllowTaskOvertimeFactor,
	).Scan(
		&saved.NormalHourRate, &saved.OvertimeHourRate, &saved.OvertimeThresholdHours,
		&saved.AllowTaskOvertimeFactor, &saved.UpdatedAt,
	)
	if err != nil {
		return settings.AdminSettings{}, err
	}
	return saved, nil
}
