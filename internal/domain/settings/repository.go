package settings

import "context"

// SettingsRepository reads and writes the singleton OfficeSettings document.
type SettingsRepository interface {
	// Get retrieves the deployment's office settings
	Get(ctx context.Context) (OfficeSettings, error)

	// Upsert writes the singleton row, creating it on first save
	Upsert(ctx context.Context, s OfficeSettings) (OfficeSettings, error)
}
