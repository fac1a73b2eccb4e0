package services

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
	"github.com/custodia-labs/astrolabe/internal/core/ports/driven"
	"github.com/custodia-labs/astrolabe/internal/core/ports/driving"
	"github.com/custodia-labs/astrolabe/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyChartParallel     = "chart.parallel"
	KeyDisplaySymbols    = "display.symbols"
	KeyHistoryEnabled    = "history.enabled"
	KeyEphemerisProvider = "ephemeris.provider"
)

var settingKeys = []string{
	KeyChartParallel,
	KeyDisplaySymbols,
	KeyHistoryEnabled,
	KeyEphemerisProvider,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	return &domain.AppSettings{
		Chart: domain.ChartSettings{
			Parallel: s.getBool(KeyChartParallel, defaults.Chart.Parallel),
		},
		Display: domain.DisplaySettings{
			Symbols: s.getBool(KeyDisplaySymbols, defaults.Display.Symbols),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(KeyHistoryEnabled, defaults.History.Enabled),
		},
		Ephemeris: domain.EphemerisSettings{
			Provider: s.getProvider(defaults.Ephemeris.Provider),
		},
	}, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings are required", domain.ErrInvalidInput)
	}
	if !settings.Ephemeris.Provider.IsValid() {
		return fmt.Errorf("%w: ephemeris provider %q", domain.ErrInvalidInput, settings.Ephemeris.Provider)
	}

	if err := s.configStore.Set(KeyChartParallel, settings.Chart.Parallel); err != nil {
		return fmt.Errorf("save chart parallel: %w", err)
	}
	if err := s.configStore.Set(KeyDisplaySymbols, settings.Display.Symbols); err != nil {
		return fmt.Errorf("save display symbols: %w", err)
	}
	if err := s.configStore.Set(KeyHistoryEnabled, settings.History.Enabled); err != nil {
		return fmt.Errorf("save history enabled: %w", err)
	}
	if err := s.configStore.Set(KeyEphemerisProvider, settings.Ephemeris.Provider.String()); err != nil {
		return fmt.Errorf("save ephemeris provider: %w", err)
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Keys returns the configurable keys in display order.
func (s *SettingsService) Keys() []string {
	return slices.Clone(settingKeys)
}

// Value returns the effective value of a key, falling back to its default.
func (s *SettingsService) Value(key string) (string, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}

	switch key {
	case KeyChartParallel:
		return strconv.FormatBool(settings.Chart.Parallel), nil
	case KeyDisplaySymbols:
		return strconv.FormatBool(settings.Display.Symbols), nil
	case KeyHistoryEnabled:
		return strconv.FormatBool(settings.History.Enabled), nil
	case KeyEphemerisProvider:
		return settings.Ephemeris.Provider.String(), nil
	default:
		return "", fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
}

// SetValue parses a value for a key and persists it.
// An empty value removes the key so its default applies again.
func (s *SettingsService) SetValue(key, value string) error {
	if !slices.Contains(settingKeys, key) {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if value == "" {
		return s.configStore.Unset(key)
	}

	if key == KeyEphemerisProvider {
		provider := domain.EphemerisProvider(value)
		if !provider.IsValid() {
			return fmt.Errorf("%w: unknown ephemeris provider %q", domain.ErrInvalidInput, value)
		}
		return s.configStore.Set(key, provider.String())
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidInput, key, value)
	}
	return s.configStore.Set(key, b)
}

// getBool reads a stored flag. Hand-edited files may quote booleans, so
// strings are parsed too; anything unreadable yields the default.
func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	raw, ok := s.configStore.Lookup(key)
	if !ok {
		return defaultVal
	}
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	logger.Warn("Ignoring %s = %v in %s", key, raw, s.configStore.Path())
	return defaultVal
}

func (s *SettingsService) getProvider(defaultVal domain.EphemerisProvider) domain.EphemerisProvider {
	raw, ok := s.configStore.Lookup(KeyEphemerisProvider)
	if !ok {
		return defaultVal
	}
	if str, isString := raw.(string); isString {
		if provider := domain.EphemerisProvider(str); provider.IsValid() {
			return provider
		}
	}
	logger.Warn("Ignoring %s = %v in %s", KeyEphemerisProvider, raw, s.configStore.Path())
	return defaultVal
}
