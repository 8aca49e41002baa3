package csvsource

import (
	"context"
	"path/filepath"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/riskibarqy/ucl-stats/internal/platform/logging"
)

const defaultSettleDelay = 250 * time.Millisecond

// Watcher reloads the dataset when its local file is written or replaced.
type Watcher struct {
	path        string
	reload      func(context.Context) error
	settleDelay time.Duration
	logger      *logging.Logger
}

func NewWatcher(path string, reload func(context.Context) error, logger *logging.Logger) *Watcher {
	if logger == nil {
		logger = logging.Default()
	}
	return &Watcher{
		path:        filepath.Clean(path),
		reload:      reload,
		settleDelay: defaultSettleDelay,
		logger:      logger,
	}
}

// Run blocks until ctx is cancelled. Bursts of events inside the settle
// delay collapse into a single reload.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return crerr.Wrap(err, "create file watcher")
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace the file, so the directory is watched instead.
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return crerr.Wrapf(err, "watch %q", filepath.Dir(w.path))
	}
	w.logger.InfoContext(ctx, "dataset watcher started", "path", w.path)

	settle := time.NewTimer(w.settleDelay)
	settle.Stop()

	for {
		select {
		case <-ctx.Done():
			settle.Stop()
			w.logger.InfoContext(ctx, "dataset watcher stopped", "path", w.path)
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			settle.Reset(w.settleDelay)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnContext(ctx, "dataset watcher error", "path", w.path, "error", err)
		case <-settle.C:
			w.logger.InfoContext(ctx, "dataset file changed, reloading", "path", w.path)
			if err := w.reload(ctx); err != nil {
				w.logger.WarnContext(ctx, "dataset reload after change failed", "path", w.path, "error", err)
			}
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
