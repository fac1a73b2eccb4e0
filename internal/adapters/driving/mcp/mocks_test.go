package mcp

import (
	"context"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

// testChart builds a chart with Mercury retrograde.
func testChart(date domain.Date) *domain.Chart {
	placements := make([]domain.Placement, 0, len(domain.Bodies()))
	for i, body := range domain.Bodies() {
		pos := domain.EclipticPosition{Longitude: float64(i)*30 + 12.5, Distance: 1}
		p, err := domain.NewPlacement(body, pos, body == domain.Mercury)
		if err != nil {
			panic(err)
		}
		placements = append(placements, p)
	}
	chart, err := domain.NewChart(date, date.DayCount(), placements)
	if err != nil {
		panic(err)
	}
	return chart
}

// mockChartService is a mock implementation of driving.ChartService.
type mockChartService struct {
	lastDate domain.Date
	err      error
}

func (m *mockChartService) Build(_ context.Context, date domain.Date) (*domain.Chart, error) {
	m.lastDate = date
	if m.err != nil {
		return nil, m.err
	}
	return testChart(date), nil
}

func (m *mockChartService) BuildAt(ctx context.Context, dayCount domain.DayCount) (*domain.Chart, error) {
	return m.Build(ctx, domain.DateFromDayCount(dayCount))
}

// mockPlacementService is a mock implementation of driving.PlacementService.
type mockPlacementService struct {
	lastBody     domain.Body
	lastDayCount domain.DayCount
	err          error
}

func (m *mockPlacementService) Build(_ context.Context, body domain.Body, dayCount domain.DayCount) (domain.Placement, error) {
	m.lastBody = body
	m.lastDayCount = dayCount
	if m.err != nil {
		return domain.Placement{}, m.err
	}
	return domain.NewPlacement(body, domain.EclipticPosition{Longitude: 218.2, Distance: 0.7}, true)
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	records []domain.ChartRecord
	err     error
}

func (m *mockHistoryService) Enabled() bool {
	return true
}

func (m *mockHistoryService) Save(_ context.Context, chart *domain.Chart, label string) (*domain.ChartRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	record := domain.ChartRecord{ID: "saved", Label: label, Chart: chart}
	m.records = append(m.records, record)
	return &record, nil
}

func (m *mockHistoryService) Get(_ context.Context, id string) (*domain.ChartRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.records {
		if m.records[i].ID == id {
			return &m.records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockHistoryService) List(_ context.Context, _ domain.HistoryFilter) ([]domain.ChartRecord, error) {
	return m.records, m.err
}

func (m *mockHistoryService) Delete(_ context.Context, _ string) error {
	return m.err
}
