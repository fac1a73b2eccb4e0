package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

func testChart(t *testing.T) *domain.Chart {
	t.Helper()

	placements := make([]domain.Placement, 0, len(domain.Bodies()))
	for i, body := range domain.Bodies() {
		p, err := domain.NewPlacement(body, domain.EclipticPosition{Longitude: float64(i) * 33.3, Distance: 1}, false)
		require.NoError(t, err)
		placements = append(placements, p)
	}

	date := domain.NewDate(2000, 1, 1)
	chart, err := domain.NewChart(date, date.DayCount(), placements)
	require.NoError(t, err)
	return chart
}

func TestNewChartStore(t *testing.T) {
	store := NewChartStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.records)
}

func TestChartStore_SaveAndGet(t *testing.T) {
	store := NewChartStore()
	ctx := context.Background()
	chart := testChart(t)

	record := &domain.ChartRecord{ID: "rec-1", Label: "millennium", Chart: chart, CreatedAt: time.Now()}
	require.NoError(t, store.Save(ctx, record))

	got, err := store.Get(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, "millennium", got.Label)
	assert.Same(t, chart, got.Chart)
}

func TestChartStore_Save_Invalid(t *testing.T) {
	store := NewChartStore()

	assert.ErrorIs(t, store.Save(context.Background(), nil), domain.ErrInvalidInput)
	assert.ErrorIs(t, store.Save(context.Background(), &domain.ChartRecord{}), domain.ErrInvalidInput)
}

func TestChartStore_Get_NotFound(t *testing.T) {
	_, err := NewChartStore().Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestChartStore_List_NewestFirstWithLimit(t *testing.T) {
	store := NewChartStore()
	ctx := context.Background()
	chart := testChart(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, store.Save(ctx, &domain.ChartRecord{
			ID: id, Chart: chart, CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	all, err := store.List(ctx, domain.HistoryFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{all[0].ID, all[1].ID, all[2].ID})

	limited, err := store.List(ctx, domain.HistoryFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "c", limited[0].ID)
}

func TestChartStore_Delete(t *testing.T) {
	store := NewChartStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &domain.ChartRecord{ID: "rec-1", Chart: testChart(t)}))

	require.NoError(t, store.Delete(ctx, "rec-1"))

	_, err := store.Get(ctx, "rec-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "rec-1"), domain.ErrNotFound)
}
