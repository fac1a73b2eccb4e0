// Package ephemeris selects the driven.Ephemeris implementation named by the
// ephemeris.provider setting.
package ephemeris

import (
	"fmt"

	"github.com/custodia-labs/astrolabe/internal/adapters/driven/ephemeris/kepler"
	"github.com/custodia-labs/astrolabe/internal/core/domain"
	"github.com/custodia-labs/astrolabe/internal/core/ports/driven"
)

// Factory builds an ephemeris.
type Factory func() driven.Ephemeris

// factories maps each provider to its constructor.
var factories = map[domain.EphemerisProvider]Factory{
	domain.EphemerisKepler: func() driven.Ephemeris { return kepler.New() },
}

// New returns the ephemeris for provider.
func New(provider domain.EphemerisProvider) (driven.Ephemeris, error) {
	factory, ok := factories[provider]
	if !ok {
		return nil, fmt.Errorf("unknown ephemeris provider %q: %w", provider, domain.ErrInvalidInput)
	}
	return factory(), nil
}

// FromSettings returns the ephemeris configured in settings, or the default
// provider when settings is nil.
func FromSettings(settings *domain.AppSettings) (driven.Ephemeris, error) {
	provider := domain.DefaultAppSettings().Ephemeris.Provider
	if settings != nil {
		provider = settings.Ephemeris.Provider
	}
	return New(provider)
}

// Supported reports whether provider has a constructor.
func Supported(provider domain.EphemerisProvider) bool {
	_, ok := factories[provider]
	return ok
}
