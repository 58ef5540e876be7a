package service

import (
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/chatkit/internal/chatkit/store"
	"github.com/aussiebroadwan/chatkit/internal/chatkit/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a throwaway sqlite database with migrations applied.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000&_journal_mode=WAL"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}
