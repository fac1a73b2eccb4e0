package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
	"github.com/custodia-labs/astrolabe/internal/core/ports/driving"
	"github.com/custodia-labs/astrolabe/internal/logger"
)

// Ensure PlacementBuilder implements the interface.
var _ driving.PlacementService = (*PlacementBuilder)(nil)

// PlacementBuilder turns a body's position into a zodiac placement.
type PlacementBuilder struct {
	positions driving.PositionService
}

// NewPlacementBuilder creates a placement builder.
func NewPlacementBuilder(positions driving.PositionService) *PlacementBuilder {
	return &PlacementBuilder{positions: positions}
}

// Build places a body at a day count.
//
// The body is retrograde when its longitude decreases over the following
// minute. The difference is wrapped into (-180, 180] so that crossing from
// Pisces into Aries reads as forward motion.
func (b *PlacementBuilder) Build(
	ctx context.Context, body domain.Body, dayCount domain.DayCount,
) (domain.Placement, error) {
	now, err := b.positions.Position(ctx, body, dayCount)
	if err != nil {
		return domain.Placement{}, err
	}

	later, err := b.positions.Position(ctx, body, dayCount+domain.OneMinute)
	if err != nil {
		return domain.Placement{}, fmt.Errorf("position one minute later: %w", err)
	}

	motion := domain.DeltaDegrees(now.Longitude, later.Longitude)
	retrograde := motion < 0

	placement, err := domain.NewPlacement(body, now, retrograde)
	if err != nil {
		return domain.Placement{}, err
	}

	logger.Debug("%s: lon=%.4f lat=%.4f dist=%.6f motion=%+.6f°/min -> %s",
		body, now.Longitude, now.Latitude, now.Distance, motion, placement)
	return placement, nil
}
