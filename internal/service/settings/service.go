package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/geoattend/geoattend-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func NewSettingsService(settingsRepository settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{
		SettingsRepository: settingsRepository,
	}
}

func toResponse(s settings.OfficeSettings) settings.SettingsResponse {
	return settings.SettingsResponse{
		Latitude:             s.Latitude,
		Longitude:            s.Longitude,
		RadiusMeters:         s.RadiusMeters,
		WorkStart:            s.WorkStart,
		WorkEnd:              s.WorkEnd,
		LateToleranceMinutes: s.LateToleranceMinutes,
		UpdatedAt:            s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.SettingsResponse, error) {
	current, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.SettingsResponse{}, settings.ErrSettingsNotFound
		}
		return settings.SettingsResponse{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return toResponse(current), nil
}

// Update implements settings.SettingsService.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	saved, err := s.SettingsRepository.Upsert(ctx, settings.OfficeSettings{
		Latitude:             req.Latitude,
		Longitude:            req.Longitude,
		RadiusMeters:         req.RadiusMeters,
		WorkStart:            req.WorkStart,
		WorkEnd:              req.WorkEnd,
		LateToleranceMinutes: req.LateToleranceMinutes,
	})
	if err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to save settings: %w", err)
	}

	return toResponse(saved), nil
}
