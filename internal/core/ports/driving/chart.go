package driving

import (
	"context"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

// ChartService assembles the placements of every charted body for one instant.
type ChartService interface {
	// Build converts the date to a day count once and charts every body.
	Build(ctx context.Context, date domain.Date) (*domain.Chart, error)

	// BuildAt charts every body at a day count.
	BuildAt(ctx context.Context, dayCount domain.DayCount) (*domain.Chart, error)
}
