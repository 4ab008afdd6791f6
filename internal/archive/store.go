// Package archive persists daily prediction snapshots for later backtesting.
package archive

import (
	"context"
	"time"

	"github.com/yourusername/goalcast/internal/models"
)

// DayFormat is the canonical key for one archive day
const DayFormat = "2006-01-02"

// Store persists and retrieves daily snapshots of backtest records.
// Save appends to the named day so a second run on the same day extends the
// snapshot instead of replacing it.
type Store interface {
	// Save appends records to the snapshot for the given day
	Save(ctx context.Context, day time.Time, records []models.BacktestRecord) error

	// LoadRange returns all records whose snapshot day falls in [start, end],
	// ordered by day ascending
	LoadRange(ctx context.Context, start, end time.Time) ([]models.BacktestRecord, error)

	// Dates returns the archived snapshot days in ascending order
	Dates(ctx context.Context) ([]string, error)
}

// DayKey truncates a timestamp to its archive day key
func DayKey(t time.Time) string {
	return t.UTC().Format(DayFormat)
}
