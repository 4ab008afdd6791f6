package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/goalcast/internal/models"
)

// daySnapshot is the on-disk layout of one archive day
type daySnapshot struct {
	Date         string                  `json:"date"`
	SavedAt      time.Time               `json:"saved_at"`
	MatchesCount int                     `json:"matches_count"`
	Matches      []models.BacktestRecord `json:"matches"`
}

// FileStore persists one JSON file per archive day under a directory.
// Appends to the same day are serialized by a per-day mutex so concurrent
// savers cannot clobber each other's records.
type FileStore struct {
	dir    string
	logger *logrus.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFileStore creates the archive directory if needed and returns a store
func NewFileStore(dir string, logger *logrus.Logger) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("archive directory is required")
	}
	if logger == nil {
		logger = logrus.New()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return &FileStore{
		dir:    dir,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}, nil
}

// Save appends records to the snapshot file for the given day
func (s *FileStore) Save(ctx context.Context, day time.Time, records []models.BacktestRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key := DayKey(day)

	lock := s.dayLock(key)
	lock.Lock()
	defer lock.Unlock()

	snapshot, err := s.readDay(key)
	if err != nil {
		return err
	}
	if snapshot == nil {
		snapshot = &daySnapshot{Date: key}
	}

	snapshot.Matches = append(snapshot.Matches, records...)
	snapshot.MatchesCount = len(snapshot.Matches)
	snapshot.SavedAt = time.Now().UTC()

	if err := s.writeDay(key, snapshot); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"day":   key,
		"added": len(records),
		"total": snapshot.MatchesCount,
	}).Debug("Archived prediction snapshot")

	return nil
}

// LoadRange returns records from every snapshot day in [start, end],
// ordered by day ascending
func (s *FileStore) LoadRange(ctx context.Context, start, end time.Time) ([]models.BacktestRecord, error) {
	if end.Before(start) {
		return nil, models.ErrInvalidDateRange
	}

	days, err := s.Dates(ctx)
	if err != nil {
		return nil, err
	}

	startKey := DayKey(start)
	endKey := DayKey(end)

	var out []models.BacktestRecord
	for _, day := range days {
		if day < startKey || day > endKey {
			continue
		}
		snapshot, err := s.readDay(day)
		if err != nil {
			return nil, err
		}
		if snapshot != nil {
			out = append(out, snapshot.Matches...)
		}
	}
	return out, nil
}

// Dates returns every archived day in ascending order
func (s *FileStore) Dates(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive directory: %w", err)
	}

	days := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		day := name[:len(name)-len(".json")]
		if _, err := time.Parse(DayFormat, day); err != nil {
			continue
		}
		days = append(days, day)
	}
	sort.Strings(days)
	return days, nil
}

func (s *FileStore) dayLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

func (s *FileStore) dayPath(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) readDay(key string) (*daySnapshot, error) {
	data, err := os.ReadFile(s.dayPath(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read archive day %s: %w", key, err)
	}

	var snapshot daySnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse archive day %s: %w", key, err)
	}
	return &snapshot, nil
}

// writeDay writes via a temp file and rename so readers never see a
// half-written snapshot
func (s *FileStore) writeDay(key string, snapshot *daySnapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode archive day %s: %w", key, err)
	}

	tmp := s.dayPath(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write archive day %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.dayPath(key)); err != nil {
		return fmt.Errorf("failed to finalize archive day %s: %w", key, err)
	}
	return nil
}
