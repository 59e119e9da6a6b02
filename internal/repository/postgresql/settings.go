package postgresql

import (
	"context"

	"github.com/geoattend/geoattend-backend-go/internal/domain/settings"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/database"
)

// The office_settings table holds exactly one row per deployment,
// enforced by the fixed singleton id.
const settingsSingletonID = "office"

type settingsRepositoryImpl struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepositoryImpl{db: db}
}

// Get implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Get(ctx context.Context) (settings.OfficeSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, latitude, longitude, radius_meters, work_start, work_end, late_tolerance_minutes, updated_at
		FROM office_settings
		WHERE id = $1
	`

	var s settings.OfficeSettings
	err := q.QueryRow(ctx, query, settingsSingletonID).Scan(
		&s.ID,
		&s.Latitude,
		&s.Longitude,
		&s.RadiusMeters,
		&s.WorkStart,
		&s.WorkEnd,
		&s.LateToleranceMinutes,
		&s.UpdatedAt,
	)
	if err != nil {
		return settings.OfficeSettings{}, err
	}

	return s, nil
}

// Upsert implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Upsert(ctx context.Context, s settings.OfficeSettings) (settings.OfficeSettings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO office_settings (id, latitude, longitude, radius_meters, work_start, work_end, late_tolerance_minutes, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			radius_meters = EXCLUDED.radius_meters,
			work_start = EXCLUDED.work_start,
			work_end = EXCLUDED.work_end,
			late_tolerance_minutes = EXCLUDED.late_tolerance_minutes,
			updated_at = NOW()
		RETURNING id, latitude, longitude, radius_meters, work_start, work_end, late_tolerance_minutes, updated_at
	`

	var saved settings.OfficeSettings
	err := q.QueryRow(ctx, query,
		settingsSingletonID,
		s.Latitude,
		s.Longitude,
		s.RadiusMeters,
		s.WorkStart,
		s.WorkEnd,
		s.LateToleranceMinutes,
	).Scan(
		&saved.ID,
		&saved.Latitude,
		&saved.Longitude,
		&saved.RadiusMeters,
		&saved.WorkStart,
		&saved.WorkEnd,
		&saved.LateToleranceMinutes,
		&saved.UpdatedAt,
	)
	if err != nil {
		return settings.OfficeSettings{}, err
	}

	return saved, nil
}
