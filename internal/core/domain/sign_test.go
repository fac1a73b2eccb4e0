package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySign_Boundaries(t *testing.T) {
	tests := []struct {
		lon  float64
		want Sign
	}{
		{0, Aries},
		{29.999999, Aries},
		{30, Taurus},
		{59.5, Taurus},
		{60, Gemini},
		{90, Cancer},
		{120, Leo},
		{150, Virgo},
		{180, Libra},
		{210, Scorpio},
		{240, Sagittarius},
		{270, Capricorn},
		{300, Aquarius},
		{330, Pisces},
		{359.999999, Pisces},
	}

	for _, tt := range tests {
		got, err := ClassifySign(tt.lon)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "longitude %v", tt.lon)
	}
}

func TestClassifySign_OutOfRange(t *testing.T) {
	for _, lon := range []float64{-0.0001, 360, 361, -30, math.NaN(), math.Inf(1)} {
		_, err := ClassifySign(lon)
		assert.ErrorIs(t, err, ErrLongitudeOutOfRange, "longitude %v", lon)
	}
}

func TestSigns_PartitionEveryIntegerDegree(t *testing.T) {
	for deg := 0; deg < 360; deg++ {
		matches := 0
		for _, s := range Signs() {
			if s.Range().Contains(float64(deg)) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "degree %d", deg)

		classified, err := ClassifySign(float64(deg))
		require.NoError(t, err)
		assert.True(t, classified.Range().Contains(float64(deg)))
	}
}

func TestSigns_Contiguous(t *testing.T) {
	signs := Signs()
	require.Len(t, signs, 12)

	assert.Equal(t, 0, signs[0].StartDegree())
	for i, s := range signs {
		next := signs[(i+1)%len(signs)]
		assert.Equal(t, next.StartDegree(), (s.StartDegree()+SignWidth)%360)
		assert.Equal(t, s.Range().End%360, next.Range().Start)
		assert.Equal(t, next, s.Next())
	}
}

func TestSign_ElementAndModality(t *testing.T) {
	assert.Equal(t, ElementFire, Aries.Element())
	assert.Equal(t, ElementEarth, Taurus.Element())
	assert.Equal(t, ElementAir, Gemini.Element())
	assert.Equal(t, ElementWater, Cancer.Element())
	assert.Equal(t, ElementFire, Sagittarius.Element())
	assert.Equal(t, ElementWater, Pisces.Element())

	assert.Equal(t, ModalityCardinal, Aries.Modality())
	assert.Equal(t, ModalityFixed, Scorpio.Modality())
	assert.Equal(t, ModalityMutable, Pisces.Modality())
	assert.Equal(t, ModalityCardinal, Capricorn.Modality())
}

func TestSign_StringAndSymbol(t *testing.T) {
	assert.Equal(t, "Scorpio", Scorpio.String())
	assert.Equal(t, "♏", Scorpio.Symbol())
	assert.Equal(t, "Sign(12)", Sign(12).String())
	assert.Equal(t, "?", Sign(-1).Symbol())
}

func TestParseSign(t *testing.T) {
	s, err := ParseSign("sagittarius")
	require.NoError(t, err)
	assert.Equal(t, Sagittarius, s)

	s, err = ParseSign("♓")
	require.NoError(t, err)
	assert.Equal(t, Pisces, s)

	_, err = ParseSign("ophiuchus")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSign_JSON(t *testing.T) {
	data, err := json.Marshal(Leo)
	require.NoError(t, err)
	assert.Equal(t, `"Leo"`, string(data))

	var s Sign
	require.NoError(t, json.Unmarshal([]byte(`"Virgo"`), &s))
	assert.Equal(t, Virgo, s)

	_, err = json.Marshal(Sign(42))
	assert.Error(t, err)
}
