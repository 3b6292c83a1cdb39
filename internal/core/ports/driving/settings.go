package driving

import "github.com/custodia-labs/eatwise-cli/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save validates and persists application settings.
	Save(settings *domain.AppSettings) error

	// Set updates a single setting by key from its string form.
	Set(key, value string) error

	// Keys returns the setting keys accepted by Set.
	Keys() []string

	// Validate checks the current settings.
	Validate() error

	// Reset restores default settings.
	Reset() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
