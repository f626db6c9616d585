package history_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandrolain/gocalc/pkg/history"
)

func openTempStore(t *testing.T) (*history.SQLiteStore, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := history.OpenSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, dbPath
}

func TestSQLiteAddAndList(t *testing.T) {
	store, _ := openTempStore(t)

	require.NoError(t, store.Add("1 + 2", 3))
	require.NoError(t, store.Add("10 / 4", 2.5))

	records, err := store.List()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "1 + 2", records[0].Expression)
	assert.Equal(t, 3.0, records[0].Result)
	assert.Equal(t, "10 / 4", records[1].Expression)
	assert.Equal(t, 2.5, records[1].Result)
	assert.False(t, records[0].At.IsZero())
}

func TestSQLiteClear(t *testing.T) {
	store, _ := openTempStore(t)

	require.NoError(t, store.Add("1 + 2", 3))
	require.NoError(t, store.Clear())

	records, err := store.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	store, dbPath := openTempStore(t)
	require.NoError(t, store.Add("1 + 2", 3))
	require.NoError(t, store.Close())

	reopened, err := history.OpenSQLite(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.List()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1 + 2", records[0].Expression)
	assert.Equal(t, 3.0, records[0].Result)
}

func TestSQLiteCreatesParentDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "history.db")
	store, err := history.OpenSQLite(dbPath)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Add("1 + 2", 3))
	assert.Equal(t, dbPath, store.Path())
}
