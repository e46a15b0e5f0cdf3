package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"grindlock/internal/modules/history/domain"
	historyout "grindlock/internal/modules/history/port/out"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

type SQLiteCheckLog struct {
	db *sql.DB
}

func NewSQLiteCheckLog(dbPath string) (*SQLiteCheckLog, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	log := &SQLiteCheckLog{db: db}
	if err := log.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return log, nil
}

var _ historyout.CheckLog = (*SQLiteCheckLog)(nil)

func (s *SQLiteCheckLog) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS checks (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  at TEXT NOT NULL,
  phase TEXT NOT NULL,
  today INTEGER NOT NULL,
  yesterday INTEGER NOT NULL,
  should_block INTEGER NOT NULL,
  delta INTEGER NOT NULL,
  block_changed INTEGER NOT NULL,
  guided_slug TEXT
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create checks table: %w", err)
	}
	return nil
}

func (s *SQLiteCheckLog) Append(ctx context.Context, record domain.CheckRecord) error {
	const stmt = `
INSERT INTO checks (at, phase, today, yesterday, should_block, delta, block_changed, guided_slug)
VALUES (?, ?, ?, ?, ?, ?, ?, ?);
`
	_, err := s.db.ExecContext(ctx, stmt,
		record.At.Format(timeLayout),
		record.Phase,
		record.Today,
		record.Yesterday,
		boolToInt(record.ShouldBlock),
		record.Delta,
		boolToInt(record.BlockChanged),
		record.GuidedSlug,
	)
	if err != nil {
		return fmt.Errorf("append check: %w", err)
	}
	return nil
}

func (s *SQLiteCheckLog) Recent(ctx context.Context, limit int) ([]domain.CheckRecord, error) {
	const query = `
SELECT id, at, phase, today, yesterday, should_block, delta, block_changed, guided_slug
FROM checks ORDER BY id DESC LIMIT ?;
`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query checks: %w", err)
	}
	defer rows.Close()

	var records []domain.CheckRecord
	for rows.Next() {
		var record domain.CheckRecord
		var at string
		var shouldBlock, blockChanged int
		err := rows.Scan(&record.ID, &at, &record.Phase, &record.Today, &record.Yesterday,
			&shouldBlock, &record.Delta, &blockChanged, &record.GuidedSlug)
		if err != nil {
			return nil, fmt.Errorf("scan check: %w", err)
		}
		record.At, err = time.Parse(timeLayout, at)
		if err != nil {
			return nil, fmt.Errorf("parse check time %q: %w", at, err)
		}
		record.ShouldBlock = shouldBlock != 0
		record.BlockChanged = blockChanged != 0
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checks: %w", err)
	}
	return records, nil
}

func (s *SQLiteCheckLog) Close() error {
	return s.db.Close()
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
