package store

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
)

// tables lists the DDL applied on open. Statements are idempotent.
var tables = []string{
	`CREATE TABLE IF NOT EXISTS kv (
		"key"      TEXT PRIMARY KEY,
		"value"    TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS outcome_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence      INTEGER NOT NULL UNIQUE,
		timestamp     INTEGER NOT NULL,
		session_id    TEXT NOT NULL,
		game          TEXT NOT NULL,
		module_id     TEXT NOT NULL,
		language      TEXT NOT NULL,
		points        INTEGER NOT NULL,
		learned_words TEXT NOT NULL,
		reward        TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS outcome_events_session ON outcome_events (session_id)`,
	`CREATE TABLE IF NOT EXISTS llm_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence      INTEGER NOT NULL UNIQUE,
		timestamp     INTEGER NOT NULL,
		provider      TEXT NOT NULL,
		model         TEXT NOT NULL,
		purpose       TEXT NOT NULL,
		input_tokens  INTEGER NOT NULL,
		output_tokens INTEGER NOT NULL,
		latency_ms    INTEGER NOT NULL,
		success       INTEGER NOT NULL,
		error_message TEXT NOT NULL,
		request_body  TEXT NOT NULL,
		response_body TEXT NOT NULL
	)`,
}

func migrate(ctx context.Context, drv *entsql.Driver) error {
	for _, ddl := range tables {
		if err := drv.Exec(ctx, ddl, []any{}, nil); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
