package driven

import (
	"context"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

// Ephemeris provides heliocentric ecliptic rectangular coordinates of the
// Earth and the major planets, in AU, referred to the ecliptic and equinox
// of date.
type Ephemeris interface {
	// Name identifies the ephemeris (e.g., "kepler").
	Name() string

	// Earth returns the heliocentric position of the Earth.
	Earth(ctx context.Context, dayCount domain.DayCount) (domain.RectangularVector, error)

	// Heliocentric returns the heliocentric position of a planet.
	// Only Mercury through Neptune are covered; any other body
	// returns domain.ErrUnsupportedBody.
	Heliocentric(ctx context.Context, body domain.Body, dayCount domain.DayCount) (domain.RectangularVector, error)
}
