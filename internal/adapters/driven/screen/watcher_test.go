package screen

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
)

type countingHandler struct {
	calls atomic.Int32
}

func (h *countingHandler) ContentChanged(context.Context) (*domain.ScanRecord, error) {
	h.calls.Add(1)
	return &domain.ScanRecord{ID: "r"}, nil
}

func TestNewWatcher_Options(t *testing.T) {
	w := NewWatcher("label.txt", &countingHandler{})
	assert.Equal(t, DefaultInterval, w.Interval())

	w = NewWatcher("label.txt", &countingHandler{}, WithInterval(2*time.Second))
	assert.Equal(t, 2*time.Second, w.Interval())

	w = NewWatcher("label.txt", &countingHandler{}, WithInterval(-time.Second))
	assert.Equal(t, DefaultInterval, w.Interval())
}

func TestWatcher_HandleFsEvent(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "label.txt")
	w := NewWatcher(target, &countingHandler{})

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{"write to file", fsnotify.Event{Name: target, Op: fsnotify.Write}, true},
		{"create file", fsnotify.Event{Name: target, Op: fsnotify.Create}, true},
		{"write and chmod", fsnotify.Event{Name: target, Op: fsnotify.Write | fsnotify.Chmod}, true},
		{"chmod only", fsnotify.Event{Name: target, Op: fsnotify.Chmod}, false},
		{"remove", fsnotify.Event{Name: target, Op: fsnotify.Remove}, false},
		{"rename", fsnotify.Event{Name: target, Op: fsnotify.Rename}, false},
		{"sibling file", fsnotify.Event{Name: filepath.Join(dir, "other.txt"), Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.handleFsEvent(tt.event))
		})
	}
}

func TestWatcher_SignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "label.txt")
	require.NoError(t, os.WriteFile(path, []byte("start"), 0o600))

	handler := &countingHandler{}
	results := make(chan *domain.ScanRecord, 16)
	w := NewWatcher(path, handler,
		WithInterval(50*time.Millisecond),
		WithResultFunc(func(r *domain.ScanRecord, _ error) { results <- r }),
	)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("Ingredients: salt"), 0o600))

	select {
	case r := <-results:
		require.NotNil(t, r)
		assert.Equal(t, "r", r.ID)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change signal")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcher_CoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "label.txt")
	require.NoError(t, os.WriteFile(path, []byte("start"), 0o600))

	handler := &countingHandler{}
	w := NewWatcher(path, handler, WithInterval(time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	const writes = 20
	for i := 0; i < writes; i++ {
		require.NoError(t, os.WriteFile(path, []byte("burst"), 0o600))
	}

	assert.Eventually(t, func() bool {
		return handler.calls.Load() >= 1
	}, 5*time.Second, 20*time.Millisecond)

	// One leading and at most one trailing signal per interval.
	time.Sleep(1500 * time.Millisecond)
	assert.LessOrEqual(t, handler.calls.Load(), int32(3))
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "nope", "label.txt"), &countingHandler{})

	err := w.Run(context.Background())
	assert.Error(t, err)
}
