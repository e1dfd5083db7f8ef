package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"focusforge/internal/modules/rewards/domain"
	rewardsout "focusforge/internal/modules/rewards/port/out"
)

// SQLiteHistoryProjector appends one row per finished session. It is a
// reporting projection: the ledger aggregates stay authoritative and this
// table can be rebuilt by wiping it.
type SQLiteHistoryProjector struct {
	db *sql.DB
}

func NewSQLiteHistoryProjector(dbPath string) (rewardsout.HistoryProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteHistoryProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (p *SQLiteHistoryProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  ended_at TEXT NOT NULL,
  elapsed_seconds INTEGER NOT NULL,
  completed INTEGER NOT NULL,
  coins_awarded INTEGER NOT NULL
);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) Append(ctx context.Context, record domain.SessionRecord) error {
	const stmt = `
INSERT INTO sessions (id, ended_at, elapsed_seconds, completed, coins_awarded)
VALUES (?, ?, ?, ?, ?);
`
	completed := 0
	if record.Completed {
		completed = 1
	}
	_, err := p.db.ExecContext(ctx, stmt,
		record.ID,
		record.EndedAt.Format(time.RFC3339),
		record.ElapsedSeconds,
		completed,
		record.CoinsAwarded,
	)
	if err != nil {
		return fmt.Errorf("append session record: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) Recent(ctx context.Context, limit int) ([]domain.SessionRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
SELECT id, ended_at, elapsed_seconds, completed, coins_awarded
FROM sessions ORDER BY ended_at DESC LIMIT ?;
`
	rows, err := p.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query session history: %w", err)
	}
	defer rows.Close()

	var records []domain.SessionRecord
	for rows.Next() {
		var record domain.SessionRecord
		var endedAt string
		var completed int
		if err := rows.Scan(&record.ID, &endedAt, &record.ElapsedSeconds, &completed, &record.CoinsAwarded); err != nil {
			return nil, fmt.Errorf("scan session record: %w", err)
		}
		record.Completed = completed != 0
		record.EndedAt, err = time.Parse(time.RFC3339, endedAt)
		if err != nil {
			return nil, fmt.Errorf("parse session timestamp: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (p *SQLiteHistoryProjector) Reset(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		return fmt.Errorf("reset session history: %w", err)
	}
	return nil
}
