package series

import (
	"fmt"
	"math"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

// Fixed lunar orbital elements.
const (
	moonInclination  = 5.1454   // degrees
	moonSemiMajor    = 60.2666  // Earth radii
	moonEccentricity = 0.054900

	// EarthRadiusAU converts Earth radii to astronomical units.
	EarthRadiusAU = 4.2587504555972e-5
)

// moonElements are the time-dependent elements at one instant, in degrees.
type moonElements struct {
	node       float64 // N, longitude of the ascending node
	perigee    float64 // w, argument of perigee
	anomaly    float64 // Mm, mean anomaly
	sunAnomaly float64 // Ms
	sunLong    float64 // Ls, Sun mean longitude
}

func newMoonElements(d float64) moonElements {
	sunPerihelion := 282.9404 + 4.70935e-5*d
	sunAnomaly := domain.NormalizeDegrees(356.0470 + 0.9856002585*d)

	return moonElements{
		node:       domain.NormalizeDegrees(125.1228 - 0.0529538083*d),
		perigee:    domain.NormalizeDegrees(318.0634 + 0.1643573223*d),
		anomaly:    domain.NormalizeDegrees(115.3654 + 13.0649929509*d),
		sunAnomaly: sunAnomaly,
		sunLong:    domain.NormalizeDegrees(sunAnomaly + sunPerihelion),
	}
}

// args derives the fundamental arguments used by the perturbation tables.
func (el moonElements) args() lunarArgs {
	meanLong := domain.NormalizeDegrees(el.node + el.perigee + el.anomaly)
	return lunarArgs{
		mm: el.anomaly,
		d:  domain.NormalizeDegrees(meanLong - el.sunLong),
		ms: el.sunAnomaly,
		f:  domain.NormalizeDegrees(meanLong - el.node),
	}
}

// Moon returns the geocentric ecliptic position of the Moon, distance in AU.
func Moon(jd domain.DayCount) (domain.EclipticPosition, error) {
	el := newMoonElements(jd.SinceSeriesEpoch())

	eccAnomaly, _, err := SolveKepler(el.anomaly, moonEccentricity, KeplerTolerance)
	if err != nil {
		return domain.EclipticPosition{}, fmt.Errorf("moon at day count %.5f: %w", jd.Float(), err)
	}

	// Position in the orbital plane.
	eRad := domain.DegToRad(eccAnomaly)
	x := moonSemiMajor * (math.Cos(eRad) - moonEccentricity)
	y := moonSemiMajor * math.Sqrt(1-moonEccentricity*moonEccentricity) * math.Sin(eRad)
	r := math.Hypot(x, y)
	trueAnomaly := domain.NormalizeDegrees(domain.RadToDeg(math.Atan2(y, x)))

	// Rotate into the ecliptic through node, argument of latitude and inclination.
	n := domain.DegToRad(el.node)
	vw := domain.DegToRad(trueAnomaly + el.perigee)
	i := domain.DegToRad(moonInclination)
	ecliptic := domain.RectangularVector{
		X: r * (math.Cos(n)*math.Cos(vw) - math.Sin(n)*math.Sin(vw)*math.Cos(i)),
		Y: r * (math.Sin(n)*math.Cos(vw) + math.Cos(n)*math.Sin(vw)*math.Cos(i)),
		Z: r * math.Sin(vw) * math.Sin(i),
	}

	pos := domain.ToSpherical(ecliptic)
	args := el.args()

	return domain.EclipticPosition{
		Longitude: domain.NormalizeDegrees(pos.Longitude + sumTerms(moonLongitudeTerms, args)),
		Latitude:  pos.Latitude + sumTerms(moonLatitudeTerms, args),
		Distance:  (pos.Distance + sumTerms(moonDistanceTerms, args)) * EarthRadiusAU,
	}, nil
}
