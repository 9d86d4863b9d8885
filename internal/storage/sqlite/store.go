// Package sqlite keeps the run ledger in a SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"prisoners/internal/riddle"
	"prisoners/internal/storage"
	"prisoners/internal/storage/sqlite/migrations"
)

// Store persists aggregate run records.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens the ledger at path, creating it and applying migrations as needed.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordRun inserts run and returns its id.
func (s *Store) RecordRun(ctx context.Context, run storage.Run) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	if run.Stats.NumGames() <= 0 {
		return 0, fmt.Errorf("run has no games")
	}
	if run.NumBallots <= 0 {
		return 0, fmt.Errorf("run has no ballots")
	}
	if run.Runs <= 0 {
		return 0, fmt.Errorf("run count must be positive, got %d", run.Runs)
	}
	startedAt := run.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}
	res, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO runs (
		   seed,
		   num_ballots,
		   runs,
		   num_games,
		   num_wins,
		   proportion_wins,
		   started_at,
		   duration_ms
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		strconv.FormatUint(run.Seed, 10),
		run.NumBallots,
		run.Runs,
		run.Stats.NumGames(),
		run.Stats.NumWins(),
		run.Stats.ProportionWins(),
		toMillis(startedAt),
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert run id: %w", err)
	}
	return id, nil
}

// ListRuns returns up to limit runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]storage.Run, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, seed, num_ballots, runs, num_games, num_wins, started_at, duration_ms
		 FROM runs
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []storage.Run
	for rows.Next() {
		var (
			run                             storage.Run
			seed                            string
			numGames, numWins               int
			startedAtMillis, durationMillis int64
		)
		if err := rows.Scan(&run.ID, &seed, &run.NumBallots, &run.Runs, &numGames, &numWins, &startedAtMillis, &durationMillis); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if run.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return nil, fmt.Errorf("run %d seed: %w", run.ID, err)
		}
		if run.Stats, err = riddle.NewGameStatistics(numGames, numWins); err != nil {
			return nil, fmt.Errorf("run %d: %w", run.ID, err)
		}
		run.StartedAt = fromMillis(startedAtMillis)
		run.Duration = time.Duration(durationMillis) * time.Millisecond
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
