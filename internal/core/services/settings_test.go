package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/astrolabe/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

func TestNewSettingsService(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	require.NotNil(t, service)
}

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), *settings)
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyChartParallel, false)
	_ = store.Set(KeyDisplaySymbols, true)
	_ = store.Set(KeyHistoryEnabled, false)

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.False(t, settings.Chart.Parallel)
	assert.True(t, settings.Display.Symbols)
	assert.False(t, settings.History.Enabled)
}

func TestSettingsService_Get_InvalidProviderReturnsDefault(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyEphemerisProvider, "vsop87")

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	assert.Equal(t, domain.EphemerisKepler, settings.Ephemeris.Provider)
}

func TestSettingsService_Get_CoercesHandWrittenValues(t *testing.T) {
	store := memory.NewConfigStore(map[string]any{
		KeyChartParallel:     "false",
		KeyDisplaySymbols:    "yes please",
		KeyHistoryEnabled:    int64(0),
		KeyEphemerisProvider: int64(3),
	})

	settings, err := NewSettingsService(store).Get()

	require.NoError(t, err)
	defaults := domain.DefaultAppSettings()
	assert.False(t, settings.Chart.Parallel, "quoted booleans are parsed")
	assert.Equal(t, defaults.Display.Symbols, settings.Display.Symbols)
	assert.Equal(t, defaults.History.Enabled, settings.History.Enabled)
	assert.Equal(t, defaults.Ephemeris.Provider, settings.Ephemeris.Provider)
}

func TestSettingsService_Save(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Chart.Parallel = false
	settings.Display.Symbols = true

	require.NoError(t, service.Save(&settings))

	for key, want := range map[string]any{
		KeyChartParallel:     false,
		KeyDisplaySymbols:    true,
		KeyHistoryEnabled:    true,
		KeyEphemerisProvider: "kepler",
	} {
		got, ok := store.Lookup(key)
		require.True(t, ok, key)
		assert.Equal(t, want, got, key)
	}

	retrieved, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *retrieved)
}

func TestSettingsService_Save_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.ErrorIs(t, service.Save(nil), domain.ErrInvalidInput)

	settings := domain.DefaultAppSettings()
	settings.Ephemeris.Provider = "unknown"
	assert.ErrorIs(t, service.Save(&settings), domain.ErrInvalidInput)
}

func TestSettingsService_Save_StoreError(t *testing.T) {
	service := NewSettingsService(&failingConfigStore{ConfigStore: memory.NewConfigStore()})

	settings := domain.DefaultAppSettings()
	err := service.Save(&settings)

	assert.ErrorIs(t, err, errDiskFull)
	assert.Contains(t, err.Error(), "save chart parallel")
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	keys := service.Keys()
	assert.Equal(t, []string{"chart.parallel", "display.symbols", "history.enabled", "ephemeris.provider"}, keys)

	keys[0] = "mutated"
	assert.Equal(t, KeyChartParallel, service.Keys()[0])
}

func TestSettingsService_ValueAndSetValue(t *testing.T) {
	tests := []struct {
		key     string
		value   string
		want    string
		wantErr bool
	}{
		{KeyChartParallel, "false", "false", false},
		{KeyDisplaySymbols, "1", "true", false},
		{KeyHistoryEnabled, "F", "false", false},
		{KeyEphemerisProvider, "kepler", "kepler", false},
		{KeyChartParallel, "maybe", "", true},
		{KeyEphemerisProvider, "vsop87", "", true},
		{"chart.colour", "red", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())

			err := service.SetValue(tt.key, tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)

			got, err := service.Value(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettingsService_SetValue_EmptyRestoresDefault(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)
	require.NoError(t, service.SetValue(KeyHistoryEnabled, "false"))

	require.NoError(t, service.SetValue(KeyHistoryEnabled, ""))

	_, ok := store.Lookup(KeyHistoryEnabled)
	assert.False(t, ok)
	got, err := service.Value(KeyHistoryEnabled)
	require.NoError(t, err)
	assert.Equal(t, "true", got)

	assert.ErrorIs(t, service.SetValue("chart.colour", ""), domain.ErrInvalidInput)
}

func TestSettingsService_Value_Defaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	for key, want := range map[string]string{
		KeyChartParallel:     "true",
		KeyDisplaySymbols:    "false",
		KeyHistoryEnabled:    "true",
		KeyEphemerisProvider: "kepler",
	} {
		got, err := service.Value(key)
		require.NoError(t, err)
		assert.Equal(t, want, got, key)
	}

	_, err := service.Value("nope")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

var errDiskFull = errors.New("disk full")

// failingConfigStore rejects every write.
type failingConfigStore struct {
	*memory.ConfigStore
}

func (f *failingConfigStore) Set(string, any) error {
	return errDiskFull
}
