package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/abdulachik/pquote/internal/quotes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStore(t *testing.T) {
	t.Run("creates directory and database", func(t *testing.T) {
		tmpDir := t.TempDir()
		dbPath := filepath.Join(tmpDir, "subdir", "test.db")

		ctx := context.Background()
		store, err := NewStore(ctx, dbPath)
		require.NoError(t, err)
		defer store.Close()

		// Verify file exists
		_, err = os.Stat(dbPath)
		assert.NoError(t, err)

		// Verify we can query
		var result int
		err = store.QueryRowContext(ctx, "SELECT 1").Scan(&result)
		assert.NoError(t, err)
		assert.Equal(t, 1, result)
	})

	t.Run("sets WAL mode on files", func(t *testing.T) {
		tmpDir := t.TempDir()
		dbPath := filepath.Join(tmpDir, "test.db")

		ctx := context.Background()
		store, err := NewStore(ctx, dbPath)
		require.NoError(t, err)
		defer store.Close()

		var mode string
		err = store.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&mode)
		assert.NoError(t, err)
		assert.Equal(t, "wal", mode)
	})

	t.Run("in memory", func(t *testing.T) {
		ctx := context.Background()
		store, err := NewStore(ctx, ":memory:")
		require.NoError(t, err)
		defer store.Close()

		var fk int
		err = store.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fk)
		assert.NoError(t, err)
		assert.Equal(t, 1, fk)
	})
}

func TestStore_Migrate(t *testing.T) {
	t.Run("applies migrations", func(t *testing.T) {
		store := NewTestStore(t)
		ctx := context.Background()

		var tableName string
		err := store.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type='table' AND name='quotes'").Scan(&tableName)
		assert.NoError(t, err)
		assert.Equal(t, "quotes", tableName)
	})

	t.Run("is idempotent", func(t *testing.T) {
		store := NewTestStore(t)
		ctx := context.Background()

		// Run again
		err := store.Migrate(ctx)
		require.NoError(t, err)

		count, err := store.CountQuotes(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}

func TestStore_LoadCatalog(t *testing.T) {
	store := NewTestStore(t)
	ctx := context.Background()

	c, err := quotes.Load()
	require.NoError(t, err)

	require.NoError(t, store.LoadCatalog(ctx, c))
	// Loading twice replaces rather than duplicates.
	require.NoError(t, store.LoadCatalog(ctx, c))

	count, err := store.CountQuotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(c.Size()), count)

	t.Run("position matches id", func(t *testing.T) {
		var mismatches int
		err := store.QueryRowContext(ctx,
			"SELECT COUNT(*) FROM quotes WHERE id != ? - position", c.Size()).Scan(&mismatches)
		require.NoError(t, err)
		assert.Zero(t, mismatches)
	})

	t.Run("by author", func(t *testing.T) {
		authors, err := store.CountQuotesByAuthor(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, authors)

		var total int64
		counts := make(map[string]int64)
		for i, a := range authors {
			total += a.Count
			counts[a.Author] = a.Count
			if i > 0 {
				assert.GreaterOrEqual(t, authors[i-1].Count, a.Count)
			}
		}
		assert.Equal(t, int64(c.Size()), total)
		assert.Equal(t, int64(32), counts["Linus Torvalds"])
		assert.Equal(t, int64(3), counts["Rob Pike"])
	})

	t.Run("by family", func(t *testing.T) {
		families, err := store.CountQuotesByFamily(ctx)
		require.NoError(t, err)
		require.Len(t, families, len(quotes.Families()))

		counts := make(map[string]int64)
		for _, f := range families {
			counts[f.Family] = f.Count
		}
		assert.Equal(t, int64(16), counts[string(quotes.FamilyJournalDev)])
		assert.Equal(t, int64(147), counts[string(quotes.FamilyVimStartify)])
		assert.Equal(t, int64(59), counts[string(quotes.FamilyAZQuotes)])
	})
}

func TestExtractUpMigration(t *testing.T) {
	t.Run("extracts up portion", func(t *testing.T) {
		content := `-- +migrate Up
CREATE TABLE test (id INTEGER);

-- +migrate Down
DROP TABLE test;
`
		result := extractUpMigration(content)
		assert.Equal(t, "CREATE TABLE test (id INTEGER);", result)
	})

	t.Run("handles no down marker", func(t *testing.T) {
		content := "CREATE TABLE test (id INTEGER);"
		result := extractUpMigration(content)
		assert.Equal(t, "CREATE TABLE test (id INTEGER);", result)
	})
}

func TestIsMemoryDSN(t *testing.T) {
	assert.True(t, isMemoryDSN(":memory:"))
	assert.True(t, isMemoryDSN("file::memory:?cache=shared"))
	assert.True(t, isMemoryDSN("file:stats?mode=memory"))
	assert.False(t, isMemoryDSN("data/stats.db"))
}

// NewTestStore provides a migrated in-memory database for tests.
func NewTestStore(t *testing.T) *Store {
	t.Helper()

	ctx := context.Background()
	store, err := NewStore(ctx, ":memory:")
	require.NoError(t, err)

	err = store.Migrate(ctx)
	require.NoError(t, err)

	t.Cleanup(func() {
		store.Close()
	})

	return store
}
