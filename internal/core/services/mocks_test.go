package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

// mockEphemeris returns fixed heliocentric vectors.
type mockEphemeris struct {
	earth    domain.RectangularVector
	planets  map[domain.Body]domain.RectangularVector
	earthErr error
	err      error
}

func (m *mockEphemeris) Name() string { return "mock" }

func (m *mockEphemeris) Earth(_ context.Context, _ domain.DayCount) (domain.RectangularVector, error) {
	if m.earthErr != nil {
		return domain.RectangularVector{}, m.earthErr
	}
	return m.earth, nil
}

func (m *mockEphemeris) Heliocentric(
	_ context.Context, body domain.Body, _ domain.DayCount,
) (domain.RectangularVector, error) {
	if m.err != nil {
		return domain.RectangularVector{}, m.err
	}
	v, ok := m.planets[body]
	if !ok {
		return domain.RectangularVector{}, domain.ErrUnsupportedBody
	}
	return v, nil
}

// mockPositions returns longitudes from a function of body and day count.
type mockPositions struct {
	longitude func(body domain.Body, dayCount domain.DayCount) float64
	errAt     map[domain.DayCount]error
}

func (m *mockPositions) Position(
	_ context.Context, body domain.Body, dayCount domain.DayCount,
) (domain.EclipticPosition, error) {
	if err, ok := m.errAt[dayCount]; ok {
		return domain.EclipticPosition{}, err
	}
	return domain.EclipticPosition{Longitude: m.longitude(body, dayCount), Distance: 1}, nil
}

// mockPlacements records calls and fails for selected bodies.
type mockPlacements struct {
	mu        sync.Mutex
	calls     []domain.Body
	errs      map[domain.Body]error
	placement func(body domain.Body, dayCount domain.DayCount) domain.Placement
}

func (m *mockPlacements) Build(
	_ context.Context, body domain.Body, dayCount domain.DayCount,
) (domain.Placement, error) {
	m.mu.Lock()
	m.calls = append(m.calls, body)
	m.mu.Unlock()

	if err, ok := m.errs[body]; ok {
		return domain.Placement{}, err
	}
	if m.placement != nil {
		return m.placement(body, dayCount), nil
	}
	return domain.Placement{Body: body, Sign: domain.Sign(int(body) % 12), Degrees: 1}, nil
}

func (m *mockPlacements) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
