package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// CycleRecord is one persisted scheduling cycle summary. The scheduler core
// stays stateless; history is recorded outside it, per cycle, for the
// dashboard and post-hoc analysis.
type CycleRecord struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Algorithm string    `json:"algorithm" db:"algorithm"`
	Processes int       `json:"processes" db:"processes"`
	MeanSlice float64   `json:"mean_slice" db:"mean_slice"`
	MeanWait  float64   `json:"mean_wait" db:"mean_wait"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

const schema = `
CREATE TABLE IF NOT EXISTS schedule_cycles (
	id         UUID PRIMARY KEY,
	algorithm  TEXT NOT NULL,
	processes  INTEGER NOT NULL,
	mean_slice DOUBLE PRECISION NOT NULL,
	mean_wait  DOUBLE PRECISION NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
)`

// History stores cycle summaries in Postgres.
type History struct {
	db *sql.DB
}

func Open(url string) (*History, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &History{db: db}, nil
}

func (h *History) SaveCycle(ctx context.Context, rec CycleRecord) error {
	_, err := h.db.ExecContext(ctx,
		`INSERT INTO schedule_cycles (id, algorithm, processes, mean_slice, mean_wait, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.Algorithm, rec.Processes, rec.MeanSlice, rec.MeanWait, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert cycle: %w", err)
	}
	return nil
}

func (h *History) Recent(ctx context.Context, limit int) ([]CycleRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, algorithm, processes, mean_slice, mean_wait, created_at
		 FROM schedule_cycles ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query cycles: %w", err)
	}
	defer rows.Close()

	var out []CycleRecord
	for rows.Next() {
		var rec CycleRecord
		if err := rows.Scan(&rec.ID, &rec.Algorithm, &rec.Processes, &rec.MeanSlice, &rec.MeanWait, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cycle: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (h *History) Close() error {
	return h.db.Close()
}
