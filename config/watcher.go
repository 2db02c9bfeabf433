package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/b0bbywan/go-panel-actions/logger"
)

// Watcher reloads the configuration when the config file changes and hands
// the fresh Config to the registered callback. This is the settings
// collaborator: kind changes and lockdown flag flips both arrive this way.
type Watcher struct {
	ctx      context.Context
	path     string
	onReload func(*Config)
}

func NewWatcher(ctx context.Context, cfg *Config, onReload func(*Config)) *Watcher {
	return &Watcher{
		ctx:      ctx,
		path:     cfg.Path,
		onReload: onReload,
	}
}

// Start begins watching. A daemon running on defaults has no file to watch;
// that is not an error.
func (w *Watcher) Start() error {
	if w.path == "" {
		logger.Info("[config] no config file in use, change watching disabled")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// Watch the directory: editors replace the file on save, which would
	// drop a watch registered on the file itself.
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			logger.Info("[config] failed to close watcher: %v", closeErr)
		}
		return err
	}

	logger.Info("[config] watching %s", w.path)

	go w.listen(watcher)

	return nil
}

func (w *Watcher) listen(watcher *fsnotify.Watcher) {
	defer func() {
		if err := watcher.Close(); err != nil {
			logger.Warn("[config] failed to close watcher: %v", err)
		}
	}()

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			w.dispatch(event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Error("[config] watcher error: %v", err)
		}
	}
}

func (w *Watcher) dispatch(event fsnotify.Event) {
	if filepath.Base(event.Name) != filepath.Base(w.path) {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	logger.Debug("[config] %s changed, reloading", event.Name)

	cfg, err := New()
	if err != nil {
		logger.Error("[config] reload failed: %v", err)
		return
	}

	if w.onReload != nil {
		w.onReload(cfg)
	}
}
