package driving

import (
	"context"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

// HistoryService manages saved charts.
type HistoryService interface {
	// Enabled reports whether charts are being persisted.
	Enabled() bool

	// Save records a chart under an optional label and returns the record.
	Save(ctx context.Context, chart *domain.Chart, label string) (*domain.ChartRecord, error)

	// Get retrieves a saved chart by ID.
	Get(ctx context.Context, id string) (*domain.ChartRecord, error)

	// List returns saved charts, newest first.
	List(ctx context.Context, filter domain.HistoryFilter) ([]domain.ChartRecord, error)

	// Delete removes a saved chart.
	Delete(ctx context.Context, id string) error
}
