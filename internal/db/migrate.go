package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; the set is
// re-run on every open.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			// ALTER TABLE statements re-run on every open; tolerate the
			// duplicate column error they produce the second time.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS checkin_turns (
		id               TEXT PRIMARY KEY,
		text             TEXT NOT NULL,
		emotion          TEXT NOT NULL,
		intensity        REAL NOT NULL,
		tier             TEXT NOT NULL
		                 CHECK(tier IN ('none','low','moderate','high','severe','emergency')),
		safety_level     TEXT NOT NULL
		                 CHECK(safety_level IN ('minimal','standard','enhanced','maximum')),
		crisis_override  INTEGER NOT NULL DEFAULT 0,
		interventions    TEXT NOT NULL DEFAULT '',
		exposure_offered INTEGER NOT NULL DEFAULT 0,
		created_at       TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_checkin_turns_created ON checkin_turns(created_at)`,

	`CREATE TABLE IF NOT EXISTS intervention_outcomes (
		id         TEXT PRIMARY KEY,
		turn_id    TEXT NOT NULL REFERENCES checkin_turns(id) ON DELETE CASCADE,
		type       TEXT NOT NULL,
		rating     TEXT NOT NULL CHECK(rating IN ('helped','neutral','not_helped')),
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_outcomes_turn ON intervention_outcomes(turn_id)`,

	`CREATE TABLE IF NOT EXISTS session_profile (
		id                 TEXT PRIMARY KEY,
		progress_score     REAL NOT NULL DEFAULT 50,
		coping_skill_count INTEGER NOT NULL DEFAULT 0,
		trauma_triggers    TEXT NOT NULL DEFAULT ''
	)`,

	`INSERT OR IGNORE INTO session_profile (id, progress_score, coping_skill_count, trauma_triggers)
		VALUES ('default', 50, 0, '')`,
}
