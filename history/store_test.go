package history

import (
	"context"
	"fmt"
	"testing"
	"time"

	"medipulse/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *GormStore {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.HistoryRecord{}))

	return NewGormStore(db)
}

func record(username string, created time.Time) *models.HistoryRecord {
	return &models.HistoryRecord{
		RecordID:    uuid.NewString(),
		Username:    username,
		Timestamp:   created.Format(models.DisplayTimeFormat),
		Inputs:      []byte(`{"Gender":"Female","Age":45}`),
		Result:      "✅ Low Diabetes Risk",
		ResultType:  "not_diabetic",
		Probability: 12.5,
		CreatedAt:   created,
	}
}

func TestListNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	r1 := record("alice", base)
	r2 := record("alice", base.Add(1*time.Minute))
	r3 := record("alice", base.Add(2*time.Minute))

	for _, r := range []*models.HistoryRecord{r1, r2, r3} {
		require.NoError(t, store.Append(ctx, r))
	}

	got, err := store.List(ctx, "alice", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, r3.RecordID, got[0].RecordID)
	assert.Equal(t, r2.RecordID, got[1].RecordID)
}

func TestListTieBreaksByInsertionOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Same creation instant: the later insert wins the tie.
	at := time.Date(2026, 8, 26, 10, 0, 0, 0, time.UTC)
	first := record("alice", at)
	second := record("alice", at)

	require.NoError(t, store.Append(ctx, first))
	require.NoError(t, store.Append(ctx, second))

	got, err := store.List(ctx, "alice", 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.RecordID, got[0].RecordID)
}

func TestListEmptyHistory(t *testing.T) {
	store := newTestStore(t)

	got, err := store.List(context.Background(), "nobody", 50)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Clearing a user with no history succeeds silently.
	require.NoError(t, store.Clear(ctx, "alice"))

	now := time.Now()
	require.NoError(t, store.Append(ctx, record("alice", now)))
	require.NoError(t, store.Append(ctx, record("alice", now.Add(time.Second))))

	require.NoError(t, store.Clear(ctx, "alice"))

	got, err := store.List(ctx, "alice", 50)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Clear(ctx, "alice"))
}

func TestClearOnlyAffectsOwner(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, store.Append(ctx, record("alice", now)))
	require.NoError(t, store.Append(ctx, record("alice", now.Add(time.Second))))
	bob := record("bob", now)
	require.NoError(t, store.Append(ctx, bob))

	require.NoError(t, store.Clear(ctx, "alice"))

	got, err := store.List(ctx, "bob", 50)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, bob.RecordID, got[0].RecordID)
}

func TestPurgeOlderThan(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	now := time.Now()
	old := record("alice", now.AddDate(0, 0, -10))
	recent := record("alice", now.AddDate(0, 0, -1))
	require.NoError(t, store.Append(ctx, old))
	require.NoError(t, store.Append(ctx, recent))

	removed, err := store.PurgeOlderThan(ctx, now.AddDate(0, 0, -5))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	got, err := store.List(ctx, "alice", 50)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, recent.RecordID, got[0].RecordID)
}
