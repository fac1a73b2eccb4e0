package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
	"github.com/custodia-labs/astrolabe/internal/core/ports/driven"
	"github.com/custodia-labs/astrolabe/internal/core/ports/driving"
	"github.com/custodia-labs/astrolabe/internal/series"
)

// Ensure PositionService implements the interface.
var _ driving.PositionService = (*PositionService)(nil)

// positionFunc computes the geocentric position of one body.
type positionFunc func(ctx context.Context, dayCount domain.DayCount) (domain.EclipticPosition, error)

// PositionService computes geocentric ecliptic positions of the charted bodies.
//
// The Sun is the Earth's heliocentric vector reversed. Mercury to Neptune
// come from the ephemeris with the Earth's vector subtracted. The Moon series
// is already geocentric. The Pluto series is heliocentric and is made
// geocentric the same way as the major planets.
type PositionService struct {
	ephemeris driven.Ephemeris
	dispatch  map[domain.Body]positionFunc
}

// NewPositionService creates a position service backed by an ephemeris.
func NewPositionService(ephemeris driven.Ephemeris) *PositionService {
	s := &PositionService{ephemeris: ephemeris}
	s.dispatch = map[domain.Body]positionFunc{
		domain.Sun:     s.sun,
		domain.Moon:    s.moon,
		domain.Mercury: s.planet(domain.Mercury),
		domain.Venus:   s.planet(domain.Venus),
		domain.Mars:    s.planet(domain.Mars),
		domain.Jupiter: s.planet(domain.Jupiter),
		domain.Saturn:  s.planet(domain.Saturn),
		domain.Uranus:  s.planet(domain.Uranus),
		domain.Neptune: s.planet(domain.Neptune),
		domain.Pluto:   s.pluto,
	}
	return s
}

// Position returns the geocentric ecliptic position of a body.
func (s *PositionService) Position(
	ctx context.Context, body domain.Body, dayCount domain.DayCount,
) (domain.EclipticPosition, error) {
	fn, ok := s.dispatch[body]
	if !ok {
		return domain.EclipticPosition{}, fmt.Errorf("%w: %d", domain.ErrUnknownBody, int(body))
	}
	return fn(ctx, dayCount)
}

func (s *PositionService) sun(ctx context.Context, dayCount domain.DayCount) (domain.EclipticPosition, error) {
	earth, err := s.ephemeris.Earth(ctx, dayCount)
	if err != nil {
		return domain.EclipticPosition{}, fmt.Errorf("earth position: %w", err)
	}
	return domain.ToSpherical(earth.Negate()), nil
}

func (s *PositionService) moon(_ context.Context, dayCount domain.DayCount) (domain.EclipticPosition, error) {
	return series.Moon(dayCount)
}

func (s *PositionService) planet(body domain.Body) positionFunc {
	return func(ctx context.Context, dayCount domain.DayCount) (domain.EclipticPosition, error) {
		helio, err := s.ephemeris.Heliocentric(ctx, body, dayCount)
		if err != nil {
			return domain.EclipticPosition{}, fmt.Errorf("%s heliocentric position: %w", body, err)
		}
		return s.geocentric(ctx, helio, dayCount)
	}
}

func (s *PositionService) pluto(ctx context.Context, dayCount domain.DayCount) (domain.EclipticPosition, error) {
	helio := domain.ToRectangular(series.Pluto(dayCount))
	return s.geocentric(ctx, helio, dayCount)
}

// geocentric shifts a heliocentric vector to the Earth's point of view.
func (s *PositionService) geocentric(
	ctx context.Context, helio domain.RectangularVector, dayCount domain.DayCount,
) (domain.EclipticPosition, error) {
	earth, err := s.ephemeris.Earth(ctx, dayCount)
	if err != nil {
		return domain.EclipticPosition{}, fmt.Errorf("earth position: %w", err)
	}
	return domain.ToSpherical(helio.Sub(earth)), nil
}
