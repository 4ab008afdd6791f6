package archive

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/goalcast/internal/models"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	store, err := NewFileStore(t.TempDir(), logger)
	require.NoError(t, err)
	return store
}

func testRecord(home, away string) models.BacktestRecord {
	return models.BacktestRecord{
		MatchID:   uuid.New(),
		League:    "Premier League",
		HomeTeam:  home,
		AwayTeam:  away,
		MatchDate: time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC),
		Prediction: models.Prediction{
			HomeWinProb: 0.5, DrawProb: 0.3, AwayWinProb: 0.2,
			ConfidenceScore: 70,
		},
		Odds: models.MatchOdds{HomeWin: 2.0, Draw: 3.4, AwayWin: 3.8},
	}
}

func TestFileStoreRequiresDirectory(t *testing.T) {
	_, err := NewFileStore("", nil)
	assert.Error(t, err)
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	day := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	saved := testRecord("Arsenal", "Everton")
	require.NoError(t, store.Save(ctx, day, []models.BacktestRecord{saved}))

	loaded, err := store.LoadRange(ctx, day, day)
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	assert.Equal(t, saved.MatchID, loaded[0].MatchID)
	assert.Equal(t, saved.Prediction.HomeWinProb, loaded[0].Prediction.HomeWinProb)
	assert.Equal(t, saved.Odds, loaded[0].Odds)
	assert.Nil(t, loaded[0].Actual)
}

func TestFileStoreAppendsToSameDay(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	day := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, day, []models.BacktestRecord{testRecord("A", "B")}))
	require.NoError(t, store.Save(ctx, day, []models.BacktestRecord{testRecord("C", "D")}))

	loaded, err := store.LoadRange(ctx, day, day)
	require.NoError(t, err)
	assert.Len(t, loaded, 2, "a second save on the same day extends the snapshot")
}

func TestFileStoreConcurrentSaves(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	day := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Save(ctx, day, []models.BacktestRecord{testRecord("A", "B")})
		}()
	}
	wg.Wait()

	loaded, err := store.LoadRange(ctx, day, day)
	require.NoError(t, err)
	assert.Len(t, loaded, 10, "concurrent saves must not drop records")
}

func TestFileStoreLoadRangeOrdering(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	day1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

	// Saved out of order on purpose
	require.NoError(t, store.Save(ctx, day3, []models.BacktestRecord{testRecord("E", "F")}))
	require.NoError(t, store.Save(ctx, day1, []models.BacktestRecord{testRecord("A", "B")}))
	require.NoError(t, store.Save(ctx, day2, []models.BacktestRecord{testRecord("C", "D")}))

	loaded, err := store.LoadRange(ctx, day1, day3)
	require.NoError(t, err)
	require.Len(t, loaded, 3)
	assert.Equal(t, "A", loaded[0].HomeTeam)
	assert.Equal(t, "C", loaded[1].HomeTeam)
	assert.Equal(t, "E", loaded[2].HomeTeam)

	// Sub-range excludes the outer days
	middle, err := store.LoadRange(ctx, day2, day2)
	require.NoError(t, err)
	require.Len(t, middle, 1)
	assert.Equal(t, "C", middle[0].HomeTeam)
}

func TestFileStoreLoadRangeInvalid(t *testing.T) {
	store := newTestStore(t)

	start := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := store.LoadRange(context.Background(), start, end)
	assert.ErrorIs(t, err, models.ErrInvalidDateRange)
}

func TestFileStoreDates(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	days, err := store.Dates(ctx)
	require.NoError(t, err)
	assert.Empty(t, days)

	require.NoError(t, store.Save(ctx, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), []models.BacktestRecord{testRecord("C", "D")}))
	require.NoError(t, store.Save(ctx, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), []models.BacktestRecord{testRecord("A", "B")}))

	days, err = store.Dates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-01", "2025-03-02"}, days)
}

func TestDayKeyIsUTC(t *testing.T) {
	loc := time.FixedZone("UTC+11", 11*3600)
	// Late evening local time is already the next day in UTC
	local := time.Date(2025, 3, 1, 9, 0, 0, 0, loc)

	assert.Equal(t, "2025-02-28", DayKey(local))
}
