package domain

// EphemerisProvider identifies the source of planetary heliocentric vectors.
type EphemerisProvider string

// Available ephemeris providers.
const (
	// EphemerisKepler uses mean Keplerian elements with secular rates.
	EphemerisKepler EphemerisProvider = "kepler"
)

// IsValid returns true if the provider is recognised.
func (p EphemerisProvider) IsValid() bool {
	return p == EphemerisKepler
}

// String returns the string representation.
func (p EphemerisProvider) String() string {
	return string(p)
}

// ChartSettings holds chart computation behaviour.
type ChartSettings struct {
	// Parallel computes each body's placement in its own goroutine.
	Parallel bool
}

// DisplaySettings holds output formatting configuration.
type DisplaySettings struct {
	// Symbols renders glyphs instead of body and sign names.
	Symbols bool
}

// HistorySettings holds chart history configuration.
type HistorySettings struct {
	// Enabled persists every computed chart.
	Enabled bool
}

// EphemerisSettings holds the ephemeris configuration.
type EphemerisSettings struct {
	// Provider selects the heliocentric position source.
	Provider EphemerisProvider
}

// AppSettings is the full application configuration.
type AppSettings struct {
	Chart     ChartSettings
	Display   DisplaySettings
	History   HistorySettings
	Ephemeris EphemerisSettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Chart:     ChartSettings{Parallel: true},
		Display:   DisplaySettings{Symbols: false},
		History:   HistorySettings{Enabled: true},
		Ephemeris: EphemerisSettings{Provider: EphemerisKepler},
	}
}

// AllEphemerisProviders returns all available ephemeris providers.
func AllEphemerisProviders() []EphemerisProvider {
	return []EphemerisProvider{
		EphemerisKepler,
	}
}
