package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Statements are idempotent; columns added
// after the initial release are backfilled with ALTERs whose
// "duplicate column" failures are ignored.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS player (
			key TEXT PRIMARY KEY,
			name TEXT NOT NULL DEFAULT 'Player',
			level INTEGER NOT NULL DEFAULT 1,
			xp INTEGER NOT NULL DEFAULT 0,
			hp INTEGER NOT NULL DEFAULT 100,
			max_hp INTEGER NOT NULL DEFAULT 100,
			total_xp INTEGER NOT NULL DEFAULT 0,
			streak INTEGER NOT NULL DEFAULT 0,
			last_active_date TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			sound_enabled INTEGER NOT NULL DEFAULT 1,
			notifications_enabled INTEGER NOT NULL DEFAULT 1
		);`,
		`CREATE TABLE IF NOT EXISTS subtask_state (
			quest_id TEXT NOT NULL,
			subtask_id TEXT NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (quest_id, subtask_id)
		);`,
		`CREATE TABLE IF NOT EXISTS completed_today (
			entry TEXT PRIMARY KEY
		);`,
		`CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			unlocked_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS custom_quests (
			id TEXT PRIMARY KEY,
			data TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			at DATETIME NOT NULL,
			kind TEXT NOT NULL,
			detail TEXT,
			xp INTEGER NOT NULL DEFAULT 0,
			hp INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_history_kind ON history(kind);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Added after the initial schema; older databases gain it on open.
	alterStmts := []string{
		`ALTER TABLE player ADD COLUMN last_reset_date TEXT;`,
	}
	for _, stmt := range alterStmts {
		_, err := db.ExecContext(ctx, stmt)
		if err != nil && !strings.Contains(err.Error(), "duplicate column") {
			return fmt.Errorf("migrate alter: %w", err)
		}
	}

	return nil
}
