package settings

import "context"

// SettingsService defines business logic for office settings
type SettingsService interface {
	// Get retrieves the current office settings
	Get(ctx context.Context) (SettingsResponse, error)

	// Update replaces the office settings after validation (admin only)
	Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}
