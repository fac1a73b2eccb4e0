package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSpherical_Axes(t *testing.T) {
	tests := []struct {
		name string
		v    RectangularVector
		lon  float64
		lat  float64
		dist float64
	}{
		{"positive x", RectangularVector{X: 1}, 0, 0, 1},
		{"positive y", RectangularVector{Y: 2}, 90, 0, 2},
		{"negative x", RectangularVector{X: -1}, 180, 0, 1},
		{"negative y", RectangularVector{Y: -1}, 270, 0, 1},
		{"north pole", RectangularVector{Z: 3}, 0, 90, 3},
		{"south pole", RectangularVector{Z: -1}, 0, -90, 1},
		{"origin", RectangularVector{}, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ToSpherical(tt.v)
			assert.InDelta(t, tt.lon, p.Longitude, 1e-12)
			assert.InDelta(t, tt.lat, p.Latitude, 1e-12)
			assert.InDelta(t, tt.dist, p.Distance, 1e-12)
		})
	}
}

func TestToSpherical_LongitudeAlwaysNormalised(t *testing.T) {
	for deg := -720.0; deg <= 720.0; deg += 7.5 {
		rad := DegToRad(deg)
		p := ToSpherical(RectangularVector{X: math.Cos(rad), Y: math.Sin(rad), Z: 0.1})
		assert.GreaterOrEqual(t, p.Longitude, 0.0)
		assert.Less(t, p.Longitude, 360.0)
	}
}

func TestToSpherical_NegativeZeroY(t *testing.T) {
	p := ToSpherical(RectangularVector{X: 1, Y: math.Copysign(0, -1)})

	assert.GreaterOrEqual(t, p.Longitude, 0.0)
	assert.Less(t, p.Longitude, 360.0)
}

func TestCoordinateRoundTrip(t *testing.T) {
	for lon := 0.0; lon < 360.0; lon += 12.25 {
		for lat := -89.5; lat <= 89.5; lat += 14.9 {
			in := EclipticPosition{Longitude: lon, Latitude: lat, Distance: 2.75}
			out := ToSpherical(ToRectangular(in))

			assert.InDelta(t, 0, DeltaDegrees(in.Longitude, out.Longitude), 1e-9, "lon %v lat %v", lon, lat)
			assert.InDelta(t, in.Latitude, out.Latitude, 1e-9, "lon %v lat %v", lon, lat)
			assert.InDelta(t, in.Distance, out.Distance, 1e-12, "lon %v lat %v", lon, lat)
		}
	}
}

func TestCoordinateRoundTrip_Poles(t *testing.T) {
	for _, lat := range []float64{-90, 90} {
		out := ToSpherical(ToRectangular(EclipticPosition{Longitude: 123, Latitude: lat, Distance: 1}))
		assert.InDelta(t, lat, out.Latitude, 1e-9)
		assert.InDelta(t, 1.0, out.Distance, 1e-12)
	}
}

func TestRectangularVector_Arithmetic(t *testing.T) {
	v := RectangularVector{X: 3, Y: 4, Z: 12}
	u := RectangularVector{X: 1, Y: 1, Z: 1}

	assert.Equal(t, RectangularVector{X: 2, Y: 3, Z: 11}, v.Sub(u))
	assert.Equal(t, RectangularVector{X: -3, Y: -4, Z: -12}, v.Negate())
	assert.InDelta(t, 13.0, v.Norm(), 1e-12)
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{720.25, 0.25},
		{-0.25, 359.75},
		{-725, 355},
		{1.3e6 + 10, math.Mod(1.3e6+10, 360)},
	}

	for _, tt := range tests {
		got := NormalizeDegrees(tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "NormalizeDegrees(%v)", tt.in)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, 360.0)
	}
}

func TestNormalizeDegrees_TinyNegative(t *testing.T) {
	got := NormalizeDegrees(-1e-20)

	assert.GreaterOrEqual(t, got, 0.0)
	assert.Less(t, got, 360.0)
}

func TestDeltaDegrees(t *testing.T) {
	assert.InDelta(t, 1.0, DeltaDegrees(10, 11), 1e-12)
	assert.InDelta(t, -1.0, DeltaDegrees(11, 10), 1e-12)
	assert.InDelta(t, 0.02, DeltaDegrees(359.99, 0.01), 1e-9)
	assert.InDelta(t, -0.02, DeltaDegrees(0.01, 359.99), 1e-9)
	assert.InDelta(t, 180.0, DeltaDegrees(0, 180), 1e-12)
}
