package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/goalcast/internal/database"
	"github.com/yourusername/goalcast/internal/models"
)

// PostgresStore persists archive records as JSONB rows, one row per record,
// keyed by snapshot day. Appends are plain inserts so concurrent savers need
// no coordination beyond the database itself.
type PostgresStore struct {
	db     *database.DB
	logger *logrus.Logger
}

// NewPostgresStore creates a postgres-backed archive store and ensures the
// archive table exists
func NewPostgresStore(ctx context.Context, db *database.DB, logger *logrus.Logger) (*PostgresStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	if logger == nil {
		logger = logrus.New()
	}

	store := &PostgresStore{db: db, logger: logger}
	if err := store.ensureSchema(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS archive_records (
			id BIGSERIAL PRIMARY KEY,
			snapshot_day DATE NOT NULL,
			match_id UUID NOT NULL,
			record JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_archive_records_day ON archive_records (snapshot_day);
	`
	if err := s.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure archive schema: %w", err)
	}
	return nil
}

// Save appends records to the snapshot for the given day
func (s *PostgresStore) Save(ctx context.Context, day time.Time, records []models.BacktestRecord) error {
	if len(records) == 0 {
		return nil
	}
	key := DayKey(day)

	err := s.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		for i := range records {
			payload, err := json.Marshal(records[i])
			if err != nil {
				return fmt.Errorf("failed to encode record %s: %w", records[i].MatchID, err)
			}
			_, err = tx.Exec(ctx,
				`INSERT INTO archive_records (snapshot_day, match_id, record) VALUES ($1, $2, $3)`,
				key, records[i].MatchID, payload,
			)
			if err != nil {
				return fmt.Errorf("failed to insert record %s: %w", records[i].MatchID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"day":   key,
		"added": len(records),
	}).Debug("Archived prediction snapshot")

	return nil
}

// LoadRange returns records from every snapshot day in [start, end],
// ordered by day ascending
func (s *PostgresStore) LoadRange(ctx context.Context, start, end time.Time) ([]models.BacktestRecord, error) {
	if end.Before(start) {
		return nil, models.ErrInvalidDateRange
	}

	rows, err := s.db.Query(ctx,
		`SELECT record FROM archive_records
		 WHERE snapshot_day >= $1 AND snapshot_day <= $2
		 ORDER BY snapshot_day ASC, id ASC`,
		DayKey(start), DayKey(end),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query archive range: %w", err)
	}
	defer rows.Close()

	var out []models.BacktestRecord
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan archive record: %w", err)
		}
		var record models.BacktestRecord
		if err := json.Unmarshal(payload, &record); err != nil {
			return nil, fmt.Errorf("failed to decode archive record: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate archive records: %w", err)
	}
	return out, nil
}

// Dates returns every archived day in ascending order
func (s *PostgresStore) Dates(ctx context.Context) ([]string, error) {
	rows, err := s.db.Query(ctx,
		`SELECT DISTINCT snapshot_day FROM archive_records ORDER BY snapshot_day ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query archive dates: %w", err)
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("failed to scan archive date: %w", err)
		}
		days = append(days, day.Format(DayFormat))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate archive dates: %w", err)
	}
	return days, nil
}
