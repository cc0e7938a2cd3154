package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMigrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dealer.db")

	db, err := New(path)
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"players", "rounds"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		require.NoError(t, err)
		assert.Equal(t, table, name)
	}

	// migrating twice is harmless
	db2, err := New(path)
	require.NoError(t, err)
	db2.Close()
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "a.db?_busy_timeout=5000&_journal_mode=WAL", sqliteDSN("a.db"))
	assert.Equal(t, "file:a.db?cache=shared&_busy_timeout=5000&_journal_mode=WAL", sqliteDSN("file:a.db?cache=shared"))
}
