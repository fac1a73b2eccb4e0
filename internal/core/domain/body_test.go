package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodies_FixedOrder(t *testing.T) {
	expected := []Body{Sun, Moon, Mercury, Venus, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

	assert.Equal(t, expected, Bodies())
	for i, b := range Bodies() {
		assert.Equal(t, i, int(b))
		assert.True(t, b.IsValid())
	}
}

func TestBody_Invalid(t *testing.T) {
	assert.False(t, Body(-1).IsValid())
	assert.False(t, Body(10).IsValid())
	assert.Equal(t, "Body(10)", Body(10).String())
	assert.Equal(t, "?", Body(10).Symbol())
}

func TestBody_Symbols(t *testing.T) {
	tests := []struct {
		body   Body
		name   string
		symbol string
	}{
		{Sun, "Sun", "☉"},
		{Moon, "Moon", "☽"},
		{Mercury, "Mercury", "☿"},
		{Venus, "Venus", "♀"},
		{Mars, "Mars", "♂"},
		{Jupiter, "Jupiter", "♃"},
		{Saturn, "Saturn", "♄"},
		{Uranus, "Uranus", "⛢"},
		{Neptune, "Neptune", "♆"},
		{Pluto, "Pluto", "♇"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.body.String())
			assert.Equal(t, tt.symbol, tt.body.Symbol())
		})
	}
}

func TestParseBody(t *testing.T) {
	b, err := ParseBody("mercury")
	require.NoError(t, err)
	assert.Equal(t, Mercury, b)

	b, err = ParseBody("  PLUTO ")
	require.NoError(t, err)
	assert.Equal(t, Pluto, b)

	b, err = ParseBody("♄")
	require.NoError(t, err)
	assert.Equal(t, Saturn, b)

	_, err = ParseBody("earth")
	assert.ErrorIs(t, err, ErrUnknownBody)
}

func TestBody_JSON(t *testing.T) {
	data, err := json.Marshal(Neptune)
	require.NoError(t, err)
	assert.Equal(t, `"Neptune"`, string(data))

	var b Body
	require.NoError(t, json.Unmarshal([]byte(`"Mars"`), &b))
	assert.Equal(t, Mars, b)

	assert.Error(t, json.Unmarshal([]byte(`"Vulcan"`), &b))
}
