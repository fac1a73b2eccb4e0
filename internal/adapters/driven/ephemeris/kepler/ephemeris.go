package kepler

import (
	"context"
	"fmt"
	"math"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
	"github.com/custodia-labs/astrolabe/internal/core/ports/driven"
	"github.com/custodia-labs/astrolabe/internal/series"
)

// Ensure Ephemeris implements the interface.
var _ driven.Ephemeris = (*Ephemeris)(nil)

// Name is the provider name used in configuration.
const Name = string(domain.EphemerisKepler)

// DefaultTolerance is the eccentric anomaly tolerance, in degrees.
const DefaultTolerance = 1e-7

// Ephemeris computes heliocentric positions from mean orbital elements.
// It is stateless and safe for concurrent use.
type Ephemeris struct {
	tolerance float64
}

// New creates an Ephemeris with the default tolerance.
func New() *Ephemeris {
	return &Ephemeris{tolerance: DefaultTolerance}
}

// Name returns the provider name.
func (e *Ephemeris) Name() string {
	return Name
}

// Earth returns the heliocentric position of the Earth.
func (e *Ephemeris) Earth(ctx context.Context, dayCount domain.DayCount) (domain.RectangularVector, error) {
	if err := ctx.Err(); err != nil {
		return domain.RectangularVector{}, err
	}
	v, err := e.position(earthMoonBarycenter, dayCount)
	if err != nil {
		return domain.RectangularVector{}, fmt.Errorf("earth: %w", err)
	}
	return v, nil
}

// Heliocentric returns the heliocentric position of Mercury through Neptune.
func (e *Ephemeris) Heliocentric(
	ctx context.Context, body domain.Body, dayCount domain.DayCount,
) (domain.RectangularVector, error) {
	if err := ctx.Err(); err != nil {
		return domain.RectangularVector{}, err
	}

	o, ok := planets[body]
	if !ok {
		return domain.RectangularVector{}, fmt.Errorf("%w: %s has no orbital elements", domain.ErrUnsupportedBody, body)
	}

	v, err := e.position(o, dayCount)
	if err != nil {
		return domain.RectangularVector{}, fmt.Errorf("%s: %w", body, err)
	}
	return v, nil
}

// position solves the orbit at a day count and returns ecliptic-of-date coordinates.
func (e *Ephemeris) position(o orbit, dayCount domain.DayCount) (domain.RectangularVector, error) {
	t := dayCount.CenturiesSinceJ2000()
	el := o.at(t)

	argPeri := el.peri - el.node
	meanAnomaly := domain.NormalizeDegrees(el.l - el.peri)

	ecc, _, err := series.SolveKepler(meanAnomaly, el.e, e.tolerance)
	if err != nil {
		return domain.RectangularVector{}, err
	}

	// Orbital plane, x towards perihelion.
	eRad := domain.DegToRad(ecc)
	xp := el.a * (math.Cos(eRad) - el.e)
	yp := el.a * math.Sqrt(1-el.e*el.e) * math.Sin(eRad)

	cw, sw := math.Cos(domain.DegToRad(argPeri)), math.Sin(domain.DegToRad(argPeri))
	cn, sn := math.Cos(domain.DegToRad(el.node)), math.Sin(domain.DegToRad(el.node))
	ci, si := math.Cos(domain.DegToRad(el.i)), math.Sin(domain.DegToRad(el.i))

	j2000 := domain.RectangularVector{
		X: (cw*cn-sw*sn*ci)*xp + (-sw*cn-cw*sn*ci)*yp,
		Y: (cw*sn+sw*cn*ci)*xp + (-sw*sn+cw*cn*ci)*yp,
		Z: (sw*si)*xp + (cw*si)*yp,
	}

	return precess(j2000, t), nil
}

// precess rotates a J2000 ecliptic vector about the ecliptic pole by the
// general precession in longitude accumulated over t centuries.
func precess(v domain.RectangularVector, t float64) domain.RectangularVector {
	p := domain.DegToRad(1.396971*t + 0.0003086*t*t)
	cp, sp := math.Cos(p), math.Sin(p)
	return domain.RectangularVector{
		X: v.X*cp - v.Y*sp,
		Y: v.X*sp + v.Y*cp,
		Z: v.Z,
	}
}
