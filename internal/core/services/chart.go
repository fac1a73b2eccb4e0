package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
	"github.com/custodia-labs/astrolabe/internal/core/ports/driving"
	"github.com/custodia-labs/astrolabe/internal/logger"
)

// Ensure ChartService implements the interface.
var _ driving.ChartService = (*ChartService)(nil)

// ChartService assembles a placement for every charted body.
type ChartService struct {
	placements driving.PlacementService
	settings   driving.SettingsService
}

// NewChartService creates a chart service.
// The settings parameter is optional; without it charts are built in parallel.
func NewChartService(placements driving.PlacementService, settings driving.SettingsService) *ChartService {
	return &ChartService{
		placements: placements,
		settings:   settings,
	}
}

// Build charts every body at a calendar date.
func (s *ChartService) Build(ctx context.Context, date domain.Date) (*domain.Chart, error) {
	if err := date.Validate(); err != nil {
		return nil, err
	}
	return s.build(ctx, date, date.DayCount())
}

// BuildAt charts every body at a day count.
func (s *ChartService) BuildAt(ctx context.Context, dayCount domain.DayCount) (*domain.Chart, error) {
	return s.build(ctx, domain.DateFromDayCount(dayCount), dayCount)
}

func (s *ChartService) build(ctx context.Context, date domain.Date, dayCount domain.DayCount) (*domain.Chart, error) {
	logger.Section("Chart")
	logger.Debug("Date: %s, day count: %.6f", date, dayCount.Float())
	defer logger.Elapsed("Chart", time.Now())

	bodies := domain.Bodies()
	placements := make([]domain.Placement, len(bodies))
	errs := make([]error, len(bodies))

	// Each body writes only to its own slot.
	place := func(i int) {
		body := bodies[i]
		if err := ctx.Err(); err != nil {
			errs[i] = fmt.Errorf("%s: %w", body, err)
			return
		}
		p, err := s.placements.Build(ctx, body, dayCount)
		if err != nil {
			errs[i] = fmt.Errorf("%s: %w", body, err)
			return
		}
		placements[i] = p
	}

	if s.parallel() {
		var wg sync.WaitGroup
		wg.Add(len(bodies))
		for i := range bodies {
			go func() {
				defer wg.Done()
				place(i)
			}()
		}
		wg.Wait()
	} else {
		for i := range bodies {
			place(i)
		}
	}

	if err := errors.Join(errs...); err != nil {
		logger.Warn("Chart for %s failed: %v", date, err)
		return nil, fmt.Errorf("chart for %s: %w", date, err)
	}

	chart, err := domain.NewChart(date, dayCount, placements)
	if err != nil {
		return nil, err
	}

	return chart, nil
}

// parallel reports whether bodies are computed concurrently.
func (s *ChartService) parallel() bool {
	if s.settings == nil {
		return domain.DefaultAppSettings().Chart.Parallel
	}
	settings, err := s.settings.Get()
	if err != nil {
		logger.Warn("Reading settings failed, using defaults: %v", err)
		return domain.DefaultAppSettings().Chart.Parallel
	}
	return settings.Chart.Parallel
}
