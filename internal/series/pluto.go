package series

import "github.com/custodia-labs/astrolabe/internal/core/domain"

// plutoLongitude, plutoLatitude and plutoDistance are the truncated Pluto
// series: a base term plus harmonics of P and an (S-P) cross term.
// Angles are degrees, distance is AU.
var (
	plutoLongitude = harmonicSeries{
		base: 238.9508,
		rate: 0.00400703,
		harmonics: []harmonic{
			{k: 1, sin: -19.799, cos: +19.848},
			{k: 2, sin: +0.897, cos: -4.956},
			{k: 3, sin: +0.610, cos: +1.211},
			{k: 4, sin: -0.341, cos: -0.190},
			{k: 5, sin: +0.128, cos: -0.034},
			{k: 6, sin: -0.038, cos: +0.031},
		},
		crossSin: +0.020,
		crossCos: -0.010,
	}

	plutoLatitude = harmonicSeries{
		base: -3.9082,
		harmonics: []harmonic{
			{k: 1, sin: -5.453, cos: -14.975},
			{k: 2, sin: +3.527, cos: +1.673},
			{k: 3, sin: -1.051, cos: +0.328},
			{k: 4, sin: +0.179, cos: -0.292},
			{k: 5, sin: +0.019, cos: +0.100},
			{k: 6, sin: -0.031, cos: -0.026},
		},
		crossCos: +0.011,
	}

	plutoDistance = harmonicSeries{
		base: 40.72,
		harmonics: []harmonic{
			{k: 1, sin: +6.68, cos: +6.90},
			{k: 2, sin: -1.18, cos: -0.03},
			{k: 3, sin: +0.15, cos: -0.14},
		},
	}
)

// Pluto returns the heliocentric ecliptic position of Pluto, distance in AU.
func Pluto(jd domain.DayCount) domain.EclipticPosition {
	d := jd.SinceSeriesEpoch()
	s := 50.03 + 0.033459652*d
	p := 238.95 + 0.003968789*d

	return domain.EclipticPosition{
		Longitude: domain.NormalizeDegrees(plutoLongitude.eval(d, s, p)),
		Latitude:  plutoLatitude.eval(d, s, p),
		Distance:  plutoDistance.eval(d, s, p),
	}
}
