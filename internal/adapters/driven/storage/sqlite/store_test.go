package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore opens a store in a fresh temp directory.
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	return store, func() { assert.NoError(t, store.Close()) }
}

func TestNewStore_ErrorHandling(t *testing.T) {
	_, err := NewStore("/invalid\x00path")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating data directory")
}

func TestNewStore_Success(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.NotNil(t, store.db)
	assert.Equal(t, DatabaseFileName, filepath.Base(store.Path()))
	assert.FileExists(t, store.Path())
}

func TestNewStore_DirectoryCreation(t *testing.T) {
	tempDir := t.TempDir()
	dataDir := filepath.Join(tempDir, "nested", "data")

	store, err := NewStore(dataDir)
	require.NoError(t, err)
	defer store.Close()

	info, err := os.Stat(dataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewStore_Migrations(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	var count int
	err := store.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	for _, table := range []string{"charts", "chart_placements"} {
		var name string
		err := store.db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestNewStore_ReopenSkipsAppliedMigrations(t *testing.T) {
	tempDir := t.TempDir()

	first, err := NewStore(tempDir)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := NewStore(tempDir)
	require.NoError(t, err)
	defer second.Close()

	var count int
	err = second.db.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewStore_ForeignKeysEnabled(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	var enabled int
	err := store.db.QueryRow("PRAGMA foreign_keys").Scan(&enabled)
	require.NoError(t, err)
	assert.Equal(t, 1, enabled)
}

func TestStore_Close(t *testing.T) {
	tempDir := t.TempDir()

	store, err := NewStore(tempDir)
	require.NoError(t, err)

	require.NoError(t, store.Close())
	assert.Error(t, store.db.Ping())
}

func TestStore_ChartStore(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	assert.NotNil(t, store.ChartStore())
}

func tableExists(t *testing.T, s *Store, name string) bool {
	t.Helper()
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", name).Scan(&n)
	require.NoError(t, err)
	return n == 1
}

func TestLoadMigrations_Embedded(t *testing.T) {
	all, err := loadMigrations(migrationFiles)

	require.NoError(t, err)
	require.NotEmpty(t, all)
	assert.Equal(t, 1, all[0].version)
	assert.Equal(t, "001_charts", all[0].name)
	assert.Contains(t, all[0].up, "CREATE TABLE IF NOT EXISTS charts")
	assert.Contains(t, all[0].down, "DROP TABLE IF EXISTS charts")
}

func TestLoadMigrations_Ordering(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/010_late.up.sql":    {Data: []byte("SELECT 10;")},
		"migrations/002_early.up.sql":   {Data: []byte("SELECT 2;")},
		"migrations/002_early.down.sql": {Data: []byte("SELECT -2;")},
	}

	all, err := loadMigrations(fsys)

	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, []int{2, 10}, []int{all[0].version, all[1].version})
	assert.Equal(t, "SELECT -2;", all[0].down)
	assert.Empty(t, all[1].down)
}

func TestLoadMigrations_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want string
	}{
		{"empty", fstest.MapFS{}, "no migrations found"},
		{"no prefix", fstest.MapFS{"migrations/charts.up.sql": {Data: []byte("x")}}, "missing version prefix"},
		{"down only", fstest.MapFS{"migrations/003_x.down.sql": {Data: []byte("x")}}, "has no up script"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadMigrations(tt.fsys)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestStore_MigrateDownAndUp(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	all, err := loadMigrations(migrationFiles)
	require.NoError(t, err)

	require.NoError(t, store.migrateTo(ctx, all, 0))
	v, err := store.schemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
	assert.False(t, tableExists(t, store, "charts"))

	require.NoError(t, store.migrateTo(ctx, all, all[len(all)-1].version))
	v, err = store.schemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, all[len(all)-1].version, v)
	assert.True(t, tableExists(t, store, "chart_placements"))
}

func TestStore_MigrateTo_Irreversible(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	extra := []migration{{version: 1, name: "001_charts", up: "SELECT 1;"}}

	err := store.migrateTo(ctx, extra, 0)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be reverted")
}

func TestStore_MigrateTo_BadScript(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()
	ctx := context.Background()

	bad := []migration{{version: 99, name: "099_broken", up: "CREATE TABLE ("}}

	err := store.migrateTo(ctx, bad, 99)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "applying 099_broken")
	v, err := store.schemaVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, v, "failed step is rolled back")
}
