package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
	"github.com/custodia-labs/astrolabe/internal/core/ports/driving"
	"github.com/custodia-labs/astrolabe/internal/logger"
)

// Ensure TransitService implements the interface.
var _ driving.TransitService = (*TransitService)(nil)

// Limits of a single walk.
const (
	MaxTransitSteps = 10000
	MaxTransitDays  = 36600
)

// TransitService samples one body over a span of time.
type TransitService struct {
	placements driving.PlacementService
}

// NewTransitService creates a transit service.
func NewTransitService(placements driving.PlacementService) *TransitService {
	return &TransitService{placements: placements}
}

// Walk samples a body every step from the start date for the given number
// of days, inclusive of both ends. A step is flagged as an ingress when the
// sign differs from the previous sample, and as a station when the
// retrograde flag flips.
func (s *TransitService) Walk(
	ctx context.Context, body domain.Body, from domain.Date, days int, step time.Duration,
) ([]domain.TransitStep, error) {
	if !body.IsValid() {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownBody, int(body))
	}
	if err := from.Validate(); err != nil {
		return nil, err
	}
	if days <= 0 || days > MaxTransitDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d, got %d", domain.ErrInvalidInput, MaxTransitDays, days)
	}
	if step <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %s", domain.ErrInvalidInput, step)
	}

	span := time.Duration(days) * 24 * time.Hour
	count := int(span/step) + 1
	if count > MaxTransitSteps {
		return nil, fmt.Errorf("%w: %d steps exceeds the limit of %d", domain.ErrInvalidInput, count, MaxTransitSteps)
	}

	logger.Section("Transit")
	logger.Debug("%s from %s: %d steps of %s", body, from, count, step)
	defer logger.Elapsed("Transit", time.Now())

	origin := from.Time()
	steps := make([]domain.TransitStep, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		date := domain.DateFromTime(origin.Add(time.Duration(i) * step))
		dayCount := date.DayCount()
		p, err := s.placements.Build(ctx, body, dayCount)
		if err != nil {
			return nil, fmt.Errorf("transit %s at %s: %w", body, date, err)
		}

		ts := domain.TransitStep{DayCount: dayCount, Date: date, Placement: p}
		if i > 0 {
			prev := steps[i-1].Placement
			ts.Ingress = p.Sign != prev.Sign
			ts.Station = p.Retrograde != prev.Retrograde
		}
		if ts.Ingress {
			logger.Info("%s enters %s on %s", body, p.Sign, date)
		}
		steps = append(steps, ts)
	}

	return steps, nil
}
