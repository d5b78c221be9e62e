package driving

import "github.com/custodia-labs/mocapprep/internal/core/domain"

// SettingsService manages pipeline settings.
type SettingsService interface {
	// Get retrieves current settings, falling back to defaults for
	// missing or invalid values.
	Get() (*domain.Settings, error)

	// Set parses and persists a single setting by key.
	Set(key, value string) error

	// Keys returns all recognised setting keys.
	Keys() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}
