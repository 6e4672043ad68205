package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement in order. Statements are written to
// be re-runnable; ALTER TABLE additions that already exist are skipped.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS assignments (
		id           TEXT PRIMARY KEY,
		title        TEXT NOT NULL,
		course       TEXT NOT NULL DEFAULT '',
		due          TEXT NOT NULL,
		effort_hours REAL NOT NULL DEFAULT 0 CHECK(effort_hours >= 0),
		status       TEXT NOT NULL DEFAULT ''
		             CHECK(status IN ('','in_progress','submitted')),
		remind_24h   INTEGER NOT NULL DEFAULT 1,
		remind_6h    INTEGER NOT NULL DEFAULT 1,
		remind_1h    INTEGER NOT NULL DEFAULT 1,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_assignments_due ON assignments(due)`,
	`CREATE INDEX IF NOT EXISTS idx_assignments_status ON assignments(status)`,

	`CREATE TABLE IF NOT EXISTS checklist_tasks (
		id         TEXT PRIMARY KEY,
		text       TEXT NOT NULL,
		done       INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS timetable_sessions (
		id         TEXT PRIMARY KEY,
		day        INTEGER NOT NULL CHECK(day BETWEEN 0 AND 6),
		start_min  INTEGER NOT NULL,
		end_min    INTEGER NOT NULL,
		focus      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		CHECK(end_min > start_min)
	)`,

	`CREATE TABLE IF NOT EXISTS plan_blocks (
		id         TEXT PRIMARY KEY,
		seq        INTEGER NOT NULL,
		day        INTEGER NOT NULL CHECK(day BETWEEN 0 AND 6),
		start_min  INTEGER NOT NULL,
		end_min    INTEGER NOT NULL,
		title      TEXT NOT NULL,
		source     TEXT NOT NULL CHECK(source IN ('week','topic')),
		item_id    TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plan_blocks_seq ON plan_blocks(seq)`,

	// Topic plans attached to assignments, stored as JSON.
	`ALTER TABLE assignments ADD COLUMN plan_json TEXT`,
}
