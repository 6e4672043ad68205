package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"assignments", "checklist_tasks", "timetable_sessions", "plan_blocks"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	for _, idx := range []string{"idx_assignments_due", "idx_assignments_status", "idx_plan_blocks_seq"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_AddsPlanColumn(t *testing.T) {
	db := openTestDB(t)

	rows, err := db.Query(`PRAGMA table_info(assignments)`)
	require.NoError(t, err)
	defer rows.Close()

	found := false
	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			dflt       sql.NullString
			primaryKey int
		)
		require.NoError(t, rows.Scan(&cid, &name, &typ, &notNull, &dflt, &primaryKey))
		if name == "plan_json" {
			found = true
		}
	}
	require.NoError(t, rows.Err())
	assert.True(t, found, "plan_json column should exist")
}

func TestMigrate_StatusConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO assignments (id, title, due, status, created_at, updated_at)
		VALUES ('a1', 'x', '2025-01-01T00:00:00Z', 'lost', 'now', 'now')`)
	assert.Error(t, err, "unknown status should violate the CHECK constraint")
}
