package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/astrolabe/internal/core/domain"
	"github.com/custodia-labs/astrolabe/internal/core/ports/driven"
)

// chartStore implements driven.ChartStore.
type chartStore struct {
	store *Store
}

var _ driven.ChartStore = (*chartStore)(nil)

// Save stores or replaces a chart record with its placements.
func (s *chartStore) Save(ctx context.Context, record *domain.ChartRecord) error {
	if record == nil || record.ID == "" || record.Chart == nil {
		return domain.ErrInvalidInput
	}

	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	date := record.Chart.Date()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO charts (id, label, year, month, day, seconds, has_time, day_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			label = excluded.label,
			year = excluded.year,
			month = excluded.month,
			day = excluded.day,
			seconds = excluded.seconds,
			has_time = excluded.has_time,
			day_count = excluded.day_count,
			created_at = excluded.created_at
	`, record.ID, record.Label, date.Year, date.Month, date.Day, date.Seconds, date.HasTime,
		record.Chart.DayCount().Float(), createdAt.UTC())
	if err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM chart_placements WHERE chart_id = ?", record.ID); err != nil {
		return fmt.Errorf("clearing placements: %w", err)
	}

	for _, p := range record.Chart.Placements() {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO chart_placements
				(chart_id, body, sign, degrees, longitude, latitude, distance, retrograde)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, record.ID, int(p.Body), int(p.Sign), float64(p.Degrees), p.Longitude, p.Latitude, p.Distance, p.Retrograde)
		if err != nil {
			return fmt.Errorf("saving %s placement: %w", p.Body, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing chart: %w", err)
	}
	return nil
}

// Get retrieves a record by ID.
func (s *chartStore) Get(ctx context.Context, id string) (*domain.ChartRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, label, year, month, day, seconds, has_time, day_count, created_at
		FROM charts WHERE id = ?
	`, id)

	header, err := scanChartHeader(row)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, header)
}

// List returns records, newest first.
func (s *chartStore) List(ctx context.Context, filter domain.HistoryFilter) ([]domain.ChartRecord, error) {
	query := `
		SELECT id, label, year, month, day, seconds, has_time, day_count, created_at
		FROM charts ORDER BY created_at DESC, id ASC`
	args := []any{}
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying charts: %w", err)
	}

	// Drain the rows before hydrating so the connection is released.
	var headers []*chartHeader //nolint:prealloc // size unknown from query
	for rows.Next() {
		header, err := scanChartHeader(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		headers = append(headers, header)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating charts: %w", err)
	}
	rows.Close()

	records := make([]domain.ChartRecord, 0, len(headers))
	for _, header := range headers {
		record, err := s.hydrate(ctx, header)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, nil
}

// Delete removes a record; its placements cascade.
func (s *chartStore) Delete(ctx context.Context, id string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM charts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting chart: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting chart: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// chartHeader is a charts row before its placements are loaded.
type chartHeader struct {
	id        string
	label     string
	date      domain.Date
	dayCount  domain.DayCount
	createdAt time.Time
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanChartHeader(row scanner) (*chartHeader, error) {
	var h chartHeader
	var dayCount float64
	err := row.Scan(&h.id, &h.label, &h.date.Year, &h.date.Month, &h.date.Day,
		&h.date.Seconds, &h.date.HasTime, &dayCount, &h.createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning chart: %w", err)
	}
	h.dayCount = domain.DayCount(dayCount)
	return &h, nil
}

// hydrate loads a chart's placements and assembles the record.
func (s *chartStore) hydrate(ctx context.Context, h *chartHeader) (*domain.ChartRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT body, sign, degrees, longitude, latitude, distance, retrograde
		FROM chart_placements WHERE chart_id = ? ORDER BY body
	`, h.id)
	if err != nil {
		return nil, fmt.Errorf("querying placements: %w", err)
	}
	defer rows.Close()

	placements := make([]domain.Placement, 0, len(domain.Bodies()))
	for rows.Next() {
		var p domain.Placement
		var body, sign int
		var degrees float64
		if err := rows.Scan(&body, &sign, &degrees, &p.Longitude, &p.Latitude, &p.Distance, &p.Retrograde); err != nil {
			return nil, fmt.Errorf("scanning placement: %w", err)
		}
		p.Body = domain.Body(body)
		p.Sign = domain.Sign(sign)
		p.Degrees = domain.Degrees(degrees)
		placements = append(placements, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating placements: %w", err)
	}

	chart, err := domain.NewChart(h.date, h.dayCount, placements)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", h.id, err)
	}

	return &domain.ChartRecord{
		ID:        h.id,
		Label:     h.label,
		Chart:     chart,
		CreatedAt: h.createdAt,
	}, nil
}
