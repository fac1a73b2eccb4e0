package series

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

// 1990-04-19 00:00 UT, d = -3543.
const workedExampleDay domain.DayCount = 2448000.5

func TestMoonElements_WorkedExample(t *testing.T) {
	el := newMoonElements(workedExampleDay.SinceSeriesEpoch())

	assert.InDelta(t, 312.7381, el.node, 0.001)
	assert.InDelta(t, 95.7454, el.perigee, 0.001)
	assert.InDelta(t, 266.0954, el.anomaly, 0.001)
	assert.InDelta(t, 104.0653, el.sunAnomaly, 0.001)
}

func TestMoon_WorkedExample(t *testing.T) {
	pos, err := Moon(workedExampleDay)

	require.NoError(t, err)
	assert.InDelta(t, 306.94, pos.Longitude, 0.3)
	assert.InDelta(t, -0.58, pos.Latitude, 0.1)
	assert.InDelta(t, 60.68*EarthRadiusAU, pos.Distance, 0.3*EarthRadiusAU)

	sign, err := domain.ClassifySign(pos.Longitude)
	require.NoError(t, err)
	assert.Equal(t, domain.Aquarius, sign)
}

func TestMoon_StaysInPhysicalBounds(t *testing.T) {
	for jd := domain.DayCount(2415020.5); jd < 2488069.5; jd += 9.73 {
		pos, err := Moon(jd)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, pos.Longitude, 0.0)
		assert.Less(t, pos.Longitude, 360.0)
		assert.LessOrEqual(t, pos.Latitude, 5.5)
		assert.GreaterOrEqual(t, pos.Latitude, -5.5)
		// Perigee and apogee bracket 56 and 64 Earth radii.
		assert.Greater(t, pos.Distance, 55*EarthRadiusAU)
		assert.Less(t, pos.Distance, 64.5*EarthRadiusAU)
	}
}

func TestMoon_MovesAboutThirteenDegreesPerDay(t *testing.T) {
	for jd := domain.DayCount(2451544.5); jd < 2451544.5+60; jd++ {
		today, err := Moon(jd)
		require.NoError(t, err)
		tomorrow, err := Moon(jd + 1)
		require.NoError(t, err)

		step := domain.DeltaDegrees(today.Longitude, tomorrow.Longitude)
		assert.Greater(t, step, 11.0)
		assert.Less(t, step, 15.5)
	}
}

func TestMoonPerturbationTables(t *testing.T) {
	assert.Len(t, moonLongitudeTerms, 12)
	assert.Len(t, moonLatitudeTerms, 5)
	assert.Len(t, moonDistanceTerms, 2)

	// Evection alone, with every other argument at zero.
	evection := moonLongitudeTerms[0].eval(lunarArgs{mm: 90})
	assert.InDelta(t, -1.274, evection, 1e-12)

	variation := moonLongitudeTerms[1].eval(lunarArgs{d: 45})
	assert.InDelta(t, 0.658, variation, 1e-12)
}
