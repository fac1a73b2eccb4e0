package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/custodia-labs/astrolabe/internal/core/ports/driven"
	"github.com/custodia-labs/astrolabe/internal/logger"
)

// DatabaseFileName is the history database inside the data directory.
const DatabaseFileName = "history.db"

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Store owns the history database connection pool.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens dataDir/history.db and brings its schema up to date.
// An empty dataDir means ~/.astrolabe/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".astrolabe", "data")
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFileName)
	// The pragmas apply to every connection the pool opens.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}

	all, err := loadMigrations(migrationFiles)
	if err != nil {
		db.Close()
		return nil, err
	}
	if err := s.migrateTo(context.Background(), all, all[len(all)-1].version); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ChartStore returns the chart history backed by this database.
func (s *Store) ChartStore() driven.ChartStore {
	return &chartStore{store: s}
}

// migration is one numbered pair of scripts from migrations/.
type migration struct {
	version int
	name    string
	up      string
	down    string
}

// loadMigrations reads NNN_name.up.sql and NNN_name.down.sql pairs,
// sorted by version. Every version needs an up script.
func loadMigrations(fsys fs.FS) ([]migration, error) {
	paths, err := fs.Glob(fsys, "migrations/*.sql")
	if err != nil {
		return nil, err
	}

	byVersion := make(map[int]*migration)
	for _, p := range paths {
		base := path.Base(p)
		var version int
		if _, err := fmt.Sscanf(base, "%d_", &version); err != nil {
			return nil, fmt.Errorf("migration %s: missing version prefix", base)
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading migration %s: %w", base, err)
		}

		m, ok := byVersion[version]
		if !ok {
			m = &migration{version: version}
			byVersion[version] = m
		}
		switch {
		case strings.HasSuffix(base, ".up.sql"):
			m.name = strings.TrimSuffix(base, ".up.sql")
			m.up = string(data)
		case strings.HasSuffix(base, ".down.sql"):
			m.down = string(data)
		}
	}

	out := make([]migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.up == "" {
			return nil, fmt.Errorf("migration %03d has no up script", m.version)
		}
		out = append(out, *m)
	}
	if len(out) == 0 {
		return nil, errors.New("no migrations found")
	}
	slices.SortFunc(out, func(a, b migration) int { return a.version - b.version })
	return out, nil
}

// schemaVersion returns the highest applied migration, or 0.
func (s *Store) schemaVersion(ctx context.Context) (int, error) {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return 0, fmt.Errorf("creating schema_migrations: %w", err)
	}

	var v int
	if err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&v); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}

// migrateTo applies up scripts or reverts down scripts until the schema
// is at target. Each step runs in its own transaction.
func (s *Store) migrateTo(ctx context.Context, all []migration, target int) error {
	current, err := s.schemaVersion(ctx)
	if err != nil {
		return err
	}

	for _, m := range all {
		if m.version > current && m.version <= target {
			logger.Debug("Applying migration %s", m.name)
			if err := s.step(ctx, m.up, "INSERT INTO schema_migrations (version) VALUES (?)", m.version); err != nil {
				return fmt.Errorf("applying %s: %w", m.name, err)
			}
		}
	}

	for i := len(all) - 1; i >= 0; i-- {
		m := all[i]
		if m.version <= current && m.version > target {
			if m.down == "" {
				return fmt.Errorf("migration %s cannot be reverted", m.name)
			}
			logger.Debug("Reverting migration %s", m.name)
			if err := s.step(ctx, m.down, "DELETE FROM schema_migrations WHERE version = ?", m.version); err != nil {
				return fmt.Errorf("reverting %s: %w", m.name, err)
			}
		}
	}

	return nil
}

func (s *Store) step(ctx context.Context, script, record string, version int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, script); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, record, version); err != nil {
		return err
	}
	return tx.Commit()
}
