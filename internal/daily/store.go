package daily

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SQLStore keeps the marker in a single-row SQLite table. Unlike FileStore it
// can claim a date atomically, so two processes started on the same day
// cannot both pass the gate.
type SQLStore struct{ db *sql.DB }

// OpenSQLStore opens the database at path and applies migrations.
func OpenSQLStore(ctx context.Context, path string) (*SQLStore, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLStore{db: db}, nil
}

// Close releases the database handle.
func (s *SQLStore) Close() error { return s.db.Close() }

func (s *SQLStore) Last(ctx context.Context) (string, error) {
	var date string
	err := s.db.QueryRowContext(ctx, `SELECT date FROM daily_marker WHERE id=1`).Scan(&date)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read marker: %w", err)
	}
	return date, nil
}

func (s *SQLStore) Mark(ctx context.Context, date string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO daily_marker(id, date, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET date=excluded.date, updated_at=excluded.updated_at`,
		date, now(),
	)
	if err != nil {
		return fmt.Errorf("write marker: %w", err)
	}
	return nil
}

// Claim records date in one statement, only if the stored date differs.
// It reports whether the row was written.
func (s *SQLStore) Claim(ctx context.Context, date string) (bool, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO daily_marker(id, date, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET date=excluded.date, updated_at=excluded.updated_at
		 WHERE daily_marker.date <> excluded.date`,
		date, now(),
	)
	if err != nil {
		return false, fmt.Errorf("claim marker: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("claim marker: %w", err)
	}
	return n > 0, nil
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }
