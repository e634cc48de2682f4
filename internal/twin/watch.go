package twin

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// DefaultReloadDebounce is how long a watcher waits for writes to settle.
const DefaultReloadDebounce = 150 * time.Millisecond

// ConfigWatcher reloads a config file whenever it changes on disk and
// publishes each valid revision. Invalid revisions are logged and skipped.
type ConfigWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	updates  chan Config
	log      logrus.FieldLogger
}

// WatchConfig starts watching path until ctx is done or Close is called.
// The parent directory is watched so editors that replace the file on save
// are still followed.
func WatchConfig(ctx context.Context, path string, debounce time.Duration, log logrus.FieldLogger) (*ConfigWatcher, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if debounce <= 0 {
		debounce = DefaultReloadDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	cw := &ConfigWatcher{
		path:     abs,
		watcher:  w,
		debounce: debounce,
		updates:  make(chan Config, 1),
		log:      log.WithField("path", abs),
	}
	go cw.run(ctx)
	return cw, nil
}

// Updates delivers reloaded configs. Only the latest pending revision is
// kept. The channel closes when the watcher stops.
func (w *ConfigWatcher) Updates() <-chan Config { return w.updates }

// Close stops the watcher.
func (w *ConfigWatcher) Close() error { return w.watcher.Close() }

func (w *ConfigWatcher) run(ctx context.Context) {
	defer close(w.updates)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.watcher.Close()
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("config watcher error")
		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *ConfigWatcher) reload() {
	cfg, err := LoadConfig(w.path)
	if err != nil {
		w.log.WithError(err).Warn("keeping previous config")
		return
	}
	// Replace a revision nobody has picked up yet.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
	w.log.Info("config reloaded")
}
