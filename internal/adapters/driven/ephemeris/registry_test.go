package ephemeris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

func TestNew_Kepler(t *testing.T) {
	eph, err := New(domain.EphemerisKepler)

	require.NoError(t, err)
	assert.Equal(t, "kepler", eph.Name())
}

func TestNew_UnknownProvider(t *testing.T) {
	for _, provider := range []domain.EphemerisProvider{"", "horizons", "KEPLER"} {
		eph, err := New(provider)

		assert.ErrorIs(t, err, domain.ErrInvalidInput, "provider %q", provider)
		assert.Nil(t, eph)
	}
}

func TestFromSettings(t *testing.T) {
	settings := domain.DefaultAppSettings()
	eph, err := FromSettings(&settings)
	require.NoError(t, err)
	assert.Equal(t, string(settings.Ephemeris.Provider), eph.Name())

	eph, err = FromSettings(nil)
	require.NoError(t, err)
	assert.Equal(t, "kepler", eph.Name())

	settings.Ephemeris.Provider = "missing"
	_, err = FromSettings(&settings)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEveryValidProviderIsSupported(t *testing.T) {
	for _, provider := range domain.AllEphemerisProviders() {
		assert.True(t, provider.IsValid(), "provider %s", provider)
		assert.True(t, Supported(provider), "provider %s has no constructor", provider)
	}
	assert.Len(t, factories, len(domain.AllEphemerisProviders()))
}
