package dbx

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

func TestDBTX_DBAndTx(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", "file:dbx_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	insert := func(h DBTX, v string) {
		_, err := h.ExecContext(ctx, `INSERT INTO t (v) VALUES (?)`, v)
		require.NoError(t, err)
	}
	count := func(h DBTX) int {
		var n int
		require.NoError(t, h.QueryRowContext(ctx, `SELECT COUNT(*) FROM t`).Scan(&n))
		return n
	}

	_, err = db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS t (id INTEGER PRIMARY KEY, v TEXT)`)
	require.NoError(t, err)

	insert(db, "a")

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	insert(tx, "b")
	require.Equal(t, 2, count(tx))
	require.NoError(t, tx.Rollback())

	require.Equal(t, 1, count(db))
}
