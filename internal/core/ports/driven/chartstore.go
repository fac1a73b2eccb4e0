package driven

import (
	"context"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

// ChartStore persists computed charts.
// Backed by SQLite for the history, or memory for tests.
type ChartStore interface {
	// Save stores or replaces a chart record.
	Save(ctx context.Context, record *domain.ChartRecord) error

	// Get retrieves a record by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*domain.ChartRecord, error)

	// List returns records, newest first.
	List(ctx context.Context, filter domain.HistoryFilter) ([]domain.ChartRecord, error)

	// Delete removes a record.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}
