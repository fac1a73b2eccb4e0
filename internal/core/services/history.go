package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
	"github.com/custodia-labs/astrolabe/internal/core/ports/driven"
	"github.com/custodia-labs/astrolabe/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService saves and retrieves computed charts.
type HistoryService struct {
	store    driven.ChartStore
	settings driving.SettingsService
	now      func() time.Time
}

// NewHistoryService creates a history service.
// Both parameters are optional; without a store every operation
// returns domain.ErrHistoryUnavailable.
func NewHistoryService(store driven.ChartStore, settings driving.SettingsService) *HistoryService {
	return &HistoryService{
		store:    store,
		settings: settings,
		now:      time.Now,
	}
}

// Enabled reports whether charts should be saved automatically.
func (s *HistoryService) Enabled() bool {
	if s.store == nil {
		return false
	}
	if s.settings == nil {
		return domain.DefaultAppSettings().History.Enabled
	}
	settings, err := s.settings.Get()
	if err != nil {
		return false
	}
	return settings.History.Enabled
}

// Save stores a chart with an optional label.
func (s *HistoryService) Save(ctx context.Context, chart *domain.Chart, label string) (*domain.ChartRecord, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	if chart == nil {
		return nil, fmt.Errorf("%w: chart is required", domain.ErrInvalidInput)
	}

	record := &domain.ChartRecord{
		ID:        uuid.New().String(),
		Label:     strings.TrimSpace(label),
		Chart:     chart,
		CreatedAt: s.now().UTC(),
	}

	if err := s.store.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("save chart: %w", err)
	}
	return record, nil
}

// Get retrieves a saved chart by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.ChartRecord, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", domain.ErrInvalidInput)
	}
	return s.store.Get(ctx, id)
}

// List returns saved charts, newest first.
func (s *HistoryService) List(ctx context.Context, filter domain.HistoryFilter) ([]domain.ChartRecord, error) {
	if s.store == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	if filter.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidInput)
	}
	return s.store.List(ctx, filter)
}

// Delete removes a saved chart.
func (s *HistoryService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrHistoryUnavailable
	}
	if id == "" {
		return fmt.Errorf("%w: id is required", domain.ErrInvalidInput)
	}
	return s.store.Delete(ctx, id)
}
