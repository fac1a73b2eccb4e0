package driving

import (
	"context"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

// PositionService computes geocentric ecliptic positions.
type PositionService interface {
	// Position returns the geocentric position of a body.
	Position(ctx context.Context, body domain.Body, dayCount domain.DayCount) (domain.EclipticPosition, error)
}

// PlacementService places a single body in the zodiac.
type PlacementService interface {
	// Build returns the sign, degrees within the sign and retrograde flag of a body.
	Build(ctx context.Context, body domain.Body, dayCount domain.DayCount) (domain.Placement, error)
}
