package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	dbfs "github.com/mindgrove/cortex/db"
	dbpkg "github.com/mindgrove/cortex/internal/db"
	sqlite "github.com/mindgrove/cortex/internal/repository/sqlite"
)

// setupRepo opens an in-memory database with the embedded migrations applied.
func setupRepo(t *testing.T) (*sqlite.Repo, func()) {
	t.Helper()
	ctx := context.Background()

	d, err := dbpkg.New(ctx, "file::memory:?cache=shared")
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(ctx, d, dbfs.Migrations))

	return sqlite.New(d, nil), func() { d.Close() }
}

// setupFileRepo opens a file-backed database, which tolerates concurrent
// writers better than the shared in-memory cache.
func setupFileRepo(t *testing.T) (*sqlite.Repo, func()) {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "cortex_test.db")
	d, err := dbpkg.New(ctx, path)
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(ctx, d, dbfs.Migrations))

	return sqlite.New(d, nil), func() { d.Close() }
}
