package postgres

import (
	"context"
	"fmt"
)

// journalSchema - схема журнала вызовов AMap
const journalSchema = `
CREATE TABLE IF NOT EXISTS amap_call_journal (
	id          UUID PRIMARY KEY,
	operation   TEXT        NOT NULL,
	format      TEXT        NOT NULL,
	params      TEXT[]      NOT NULL DEFAULT '{}',
	signed      BOOLEAN     NOT NULL DEFAULT FALSE,
	status      TEXT        NOT NULL,
	infocode    TEXT        NOT NULL DEFAULT '',
	error_code  TEXT        NOT NULL DEFAULT '',
	duration_ms BIGINT      NOT NULL DEFAULT 0,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_amap_call_journal_created_at ON amap_call_journal (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_amap_call_journal_operation ON amap_call_journal (operation, created_at);
`

// EnsureSchema создает таблицы журнала, если их нет
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, journalSchema); err != nil {
		return fmt.Errorf("failed to apply journal schema: %w", err)
	}
	db.logger.Info("Journal schema is up to date")
	return nil
}
