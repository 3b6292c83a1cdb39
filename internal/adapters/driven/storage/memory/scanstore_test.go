package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

func record(id string, at time.Time) domain.ScanRecord {
	return domain.ScanRecord{
		ID:        id,
		Source:    "label.txt",
		Outcome:   domain.OutcomeBlock,
		Anchor:    "ingredients:",
		Text:      "Ingredients: oats, honey, salt",
		RawLength: 120,
		CreatedAt: at,
	}
}

func TestNewScanStore(t *testing.T) {
	store := NewScanStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.records)
}

func TestScanStore_SaveAndGet(t *testing.T) {
	store := NewScanStore()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Save(ctx, record("scan-1", now)))

	got, err := store.Get(ctx, "scan-1")
	require.NoError(t, err)
	assert.Equal(t, "label.txt", got.Source)
	assert.Equal(t, domain.OutcomeBlock, got.Outcome)
	assert.Equal(t, "ingredients:", got.Anchor)
	assert.Equal(t, 120, got.RawLength)
}

func TestScanStore_Save_RequiresID(t *testing.T) {
	err := NewScanStore().Save(context.Background(), domain.ScanRecord{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestScanStore_Get_NotFound(t *testing.T) {
	got, err := NewScanStore().Get(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, got)
}

func TestScanStore_List_NewestFirst(t *testing.T) {
	store := NewScanStore()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, record("old", base)))
	require.NoError(t, store.Save(ctx, record("new", base.Add(2*time.Minute))))
	require.NoError(t, store.Save(ctx, record("mid", base.Add(time.Minute))))

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "new", all[0].ID)
	assert.Equal(t, "mid", all[1].ID)
	assert.Equal(t, "old", all[2].ID)

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
	assert.Equal(t, "new", limited[0].ID)
}

func TestScanStore_DeleteAndClear(t *testing.T) {
	store := NewScanStore()
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Save(ctx, record("a", now)))
	require.NoError(t, store.Save(ctx, record("b", now)))

	require.NoError(t, store.Delete(ctx, "a"))
	_, err := store.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "a"), domain.ErrNotFound)

	require.NoError(t, store.Clear(ctx))
	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestScanStore_Concurrent(t *testing.T) {
	store := NewScanStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = store.Save(ctx, record(string(rune('a'+n%26))+"-scan", time.Now()))
			_, _ = store.List(ctx, 5)
		}(i)
	}
	wg.Wait()

	all, err := store.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 26)
}
