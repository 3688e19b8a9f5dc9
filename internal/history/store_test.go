package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndListRuns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		err := store.RecordRun(ctx, &Run{
			ID:           string(rune('a' + i)),
			Root:         "/data/project",
			Items:        100 + i,
			TotalBytes:   int64(1000 * (i + 1)),
			WithMetadata: true,
			Output:       "stdout",
			DurationMS:   int64(50 + i),
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	runs, err := store.RecentRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 3)

	// Newest first
	assert.Equal(t, "c", runs[0].ID)
	assert.Equal(t, 102, runs[0].Items)
	assert.Equal(t, int64(3000), runs[0].TotalBytes)
	assert.True(t, runs[0].WithMetadata)
	assert.Equal(t, "a", runs[2].ID)
}

func TestRecentRunsLimit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.RecordRun(ctx, &Run{
			ID:        string(rune('a' + i)),
			Root:      "/r",
			Output:    "stdout",
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	runs, err := store.RecentRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestRecordRunStampsCreatedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := &Run{ID: "x", Root: "/r", Output: "stdout"}
	require.NoError(t, store.RecordRun(ctx, run))

	assert.False(t, run.CreatedAt.IsZero())
}

func TestRecentRunsEmptyStore(t *testing.T) {
	store := newTestStore(t)

	runs, err := store.RecentRuns(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestNewStoreCreatesParentDir(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "history.db")

	store, err := NewStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.RecordRun(context.Background(), &Run{
		ID: "x", Root: "/r", Output: "stdout",
	}))
}

func TestDuplicateRunIDRejected(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordRun(ctx, &Run{ID: "dup", Root: "/r", Output: "stdout"}))
	assert.Error(t, store.RecordRun(ctx, &Run{ID: "dup", Root: "/r", Output: "stdout"}))
}
