package artifact

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/medscanlabs/oncoserve/internal/resilience"
)

// Watcher reloads the store when the artifact file changes on disk. It
// watches the containing directory because most deploy tools replace the
// file via rename, which drops a watch placed on the file itself. Events
// are debounced; copy tools emit several writes per replacement.
type Watcher struct {
	store    *Store
	logger   *slog.Logger
	debounce time.Duration
	retry    resilience.RetryConfig

	fsw       *fsnotify.Watcher
	done      chan struct{}
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewWatcher starts watching the directory of the store's artifact path.
func NewWatcher(store *Store, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create artifact watcher: %w", err)
	}

	dir := filepath.Dir(store.Path())
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		store:    store,
		logger:   logger,
		debounce: time.Second,
		retry:    resilience.DefaultRetryConfig(),
		fsw:      fsw,
		done:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}

	go w.run()
	logger.Info("Watching model artifact for changes", "path", store.Path())
	return w, nil
}

func (w *Watcher) run() {
	base := filepath.Base(w.store.Path())

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
			pending = true

		case <-timer.C:
			pending = false
			w.logger.Info("Model artifact changed on disk, reloading", "path", w.store.Path())
			// A replace can be observed half-written, so failed loads are
			// retried before giving up until the next change event. A final
			// failure keeps the served bundle.
			err := resilience.Retry(w.ctx, w.retry, func() error {
				_, err := w.store.Load()
				return err
			})
			if err != nil && w.ctx.Err() == nil {
				w.logger.Warn("Artifact reload failed after retries", "path", w.store.Path(), "error", err)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Artifact watcher error", "error", err)

		case <-w.done:
			return
		}
	}
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.cancel()
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}
