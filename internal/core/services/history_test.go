package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/astrolabe/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/astrolabe/internal/core/domain"
)

func buildTestChart(t *testing.T) *domain.Chart {
	t.Helper()
	chart, err := NewChartService(&mockPlacements{}, nil).Build(context.Background(), domain.NewDate(2000, 1, 1))
	require.NoError(t, err)
	return chart
}

func TestHistoryService_SaveAssignsIDAndTimestamp(t *testing.T) {
	store := memory.NewChartStore()
	svc := NewHistoryService(store, nil)
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	svc.now = func() time.Time { return fixed }

	record, err := svc.Save(context.Background(), buildTestChart(t), "  millennium  ")

	require.NoError(t, err)
	_, err = uuid.Parse(record.ID)
	assert.NoError(t, err)
	assert.Equal(t, "millennium", record.Label)
	assert.Equal(t, fixed.UTC(), record.CreatedAt)
	assert.Equal(t, time.UTC, record.CreatedAt.Location())

	stored, err := store.Get(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.ID, stored.ID)
}

func TestHistoryService_SaveRequiresChart(t *testing.T) {
	svc := NewHistoryService(memory.NewChartStore(), nil)

	_, err := svc.Save(context.Background(), nil, "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryService_ListGetDelete(t *testing.T) {
	svc := NewHistoryService(memory.NewChartStore(), nil)
	ctx := context.Background()
	chart := buildTestChart(t)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		svc.now = func() time.Time { return base.Add(time.Duration(i) * time.Minute) }
		record, err := svc.Save(ctx, chart, "")
		require.NoError(t, err)
		ids = append(ids, record.ID)
	}

	records, err := svc.List(ctx, domain.HistoryFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, ids[2], records[0].ID)
	assert.Equal(t, ids[1], records[1].ID)

	got, err := svc.Get(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, ids[0], got.ID)

	require.NoError(t, svc.Delete(ctx, ids[0]))
	_, err = svc.Get(ctx, ids[0])
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestHistoryService_InvalidArguments(t *testing.T) {
	svc := NewHistoryService(memory.NewChartStore(), nil)
	ctx := context.Background()

	_, err := svc.Get(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.ErrorIs(t, svc.Delete(ctx, ""), domain.ErrInvalidInput)

	_, err = svc.List(ctx, domain.HistoryFilter{Limit: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryService_NoStore(t *testing.T) {
	svc := NewHistoryService(nil, nil)
	ctx := context.Background()

	assert.False(t, svc.Enabled())

	_, err := svc.Save(ctx, buildTestChart(t), "")
	assert.ErrorIs(t, err, domain.ErrHistoryUnavailable)
	_, err = svc.Get(ctx, "id")
	assert.ErrorIs(t, err, domain.ErrHistoryUnavailable)
	_, err = svc.List(ctx, domain.HistoryFilter{})
	assert.ErrorIs(t, err, domain.ErrHistoryUnavailable)
	assert.ErrorIs(t, svc.Delete(ctx, "id"), domain.ErrHistoryUnavailable)
}

func TestHistoryService_Enabled(t *testing.T) {
	settings := NewSettingsService(memory.NewConfigStore())
	svc := NewHistoryService(memory.NewChartStore(), settings)

	assert.True(t, svc.Enabled())

	require.NoError(t, settings.SetValue(KeyHistoryEnabled, "false"))
	assert.False(t, svc.Enabled())

	assert.True(t, NewHistoryService(memory.NewChartStore(), nil).Enabled())
}
