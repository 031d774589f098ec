package driving

import "github.com/custodia-labs/recipe-book/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, with stored values merged over defaults.
	Get() (domain.Settings, error)

	// Set parses and stores a single setting.
	// Returns domain.ErrInvalidInput for unknown keys or unparsable values.
	Set(key, value string) error

	// Keys returns the recognised setting keys in display order.
	Keys() []string

	// Value returns the effective value of a key formatted for display.
	Value(key string) (string, error)

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings

	// Path returns the location of the settings file.
	Path() string
}
