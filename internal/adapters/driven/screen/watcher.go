package screen

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/eatwise-cli/internal/core/domain"
	"github.com/custodia-labs/eatwise-cli/internal/logger"
)

// DefaultInterval is the minimum time between two content-changed signals.
const DefaultInterval = 500 * time.Millisecond

// ChangeHandler receives content-changed signals.
// It is satisfied by the scan session.
type ChangeHandler interface {
	ContentChanged(ctx context.Context) (*domain.ScanRecord, error)
}

// ResultFunc is called with the outcome of every signalled change.
type ResultFunc func(record *domain.ScanRecord, err error)

// Watcher signals a ChangeHandler when a file is created or written.
// Bursts of events are coalesced: at most one signal per interval, with a
// trailing signal so the last write is never missed.
type Watcher struct {
	path     string
	handler  ChangeHandler
	interval time.Duration
	onResult ResultFunc
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithInterval sets the throttle interval. Non-positive values are ignored.
func WithInterval(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithResultFunc sets the callback invoked after every signal.
func WithResultFunc(fn ResultFunc) WatcherOption {
	return func(w *Watcher) {
		w.onResult = fn
	}
}

// NewWatcher creates a watcher for path.
func NewWatcher(path string, handler ChangeHandler, opts ...WatcherOption) *Watcher {
	w := &Watcher{
		path:     ResolvePath(path),
		handler:  handler,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Interval returns the throttle interval.
func (w *Watcher) Interval() time.Duration {
	return w.interval
}

// Run watches the file's directory until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	abs, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", w.path, err)
	}
	w.path = abs

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	logger.Debug("watching %s (interval %s)", abs, w.interval)

	limiter := rate.NewLimiter(rate.Every(w.interval), 1)
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.handleFsEvent(event) || pending {
				continue
			}
			r := limiter.Reserve()
			if delay := r.Delay(); delay > 0 {
				pending = true
				timer.Reset(delay)
				continue
			}
			w.signal(ctx)

		case <-timer.C:
			pending = false
			w.signal(ctx)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch %s: %v", abs, err)
		}
	}
}

// handleFsEvent reports whether event is a change to the watched file.
func (w *Watcher) handleFsEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write)
}

func (w *Watcher) signal(ctx context.Context) {
	record, err := w.handler.ContentChanged(ctx)
	if err != nil {
		logger.Warn("content changed: %v", err)
	}
	if w.onResult != nil {
		w.onResult(record, err)
	}
}
