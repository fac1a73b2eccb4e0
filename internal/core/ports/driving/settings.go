package driving

import "github.com/custodia-labs/astrolabe/internal/core/domain"

// SettingsService reads and writes the four user settings. Keys are the
// dot-notation names used in config.toml, e.g. "display.symbols".
type SettingsService interface {
	// Get returns every setting, with defaults filled in for unset keys.
	Get() (*domain.AppSettings, error)

	// Save writes every field of settings.
	Save(settings *domain.AppSettings) error

	GetDefaults() domain.AppSettings

	// Keys lists the setting keys in display order.
	Keys() []string

	// Value returns the effective value of key formatted as text.
	Value(key string) (string, error)

	// SetValue parses value for key and stores it.
	// An empty value resets the key to its default.
	SetValue(key, value string) error
}
