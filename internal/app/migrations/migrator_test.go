package migrations

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecer captures statements so tests can verify which executor the
// version record is written through.
type fakeExecer struct {
	sql  []string
	args [][]any
}

func (f *fakeExecer) Exec(_ context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, arguments)
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestRecordMigration_WritesThroughGivenExecutor(t *testing.T) {
	m := NewMigrator(nil)
	tx := &fakeExecer{}

	err := m.recordMigration(context.Background(), tx, "0001")
	require.NoError(t, err)

	require.Len(t, tx.sql, 1)
	assert.Contains(t, tx.sql[0], "INSERT INTO schema_migrations")
	require.Len(t, tx.args[0], 2)
	assert.Equal(t, "0001", tx.args[0][0])
}
