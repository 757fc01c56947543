package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"toolbox/internal/domain"
	"toolbox/internal/infra/telemetry"
)

const defaultReloadDebounce = 200 * time.Millisecond

// Watcher reloads the config file when it changes on disk and hands every
// valid result to OnChange. Invalid edits are logged and skipped.
type Watcher struct {
	logger   *zap.Logger
	loader   *Loader
	path     string
	debounce time.Duration
	onChange func(domain.Config)
}

type WatcherOptions struct {
	Logger   *zap.Logger
	Debounce time.Duration
	OnChange func(domain.Config)
}

func NewWatcher(loader *Loader, path string, opts WatcherOptions) *Watcher {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = defaultReloadDebounce
	}
	onChange := opts.OnChange
	if onChange == nil {
		onChange = func(domain.Config) {}
	}
	return &Watcher{
		logger:   logger.Named("config_watcher"),
		loader:   loader,
		path:     path,
		debounce: debounce,
		onChange: onChange,
	}
}

// Start begins watching the directory of the config file. Editors often
// replace the file instead of writing it, so the directory is watched and
// events are filtered by name. Watching stops when ctx is done.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return domain.E(domain.CodeUnavailable, "config.watch", "create watcher", err)
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		_ = watcher.Close()
		return domain.E(domain.CodeUnavailable, "config.watch", "watch "+filepath.Dir(w.path), err)
	}
	go w.run(ctx, watcher)
	return nil
}

func (w *Watcher) run(ctx context.Context, watcher *fsnotify.Watcher) {
	defer watcher.Close()

	target := filepath.Clean(w.path)
	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", zap.Error(err))
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
		case <-timerChan(timer):
			timer = nil
			w.reload(ctx)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	cfg, err := w.loader.Load(ctx, w.path)
	if err != nil {
		w.logger.Warn("config reload failed", zap.String("path", w.path), zap.Error(err))
		return
	}
	w.logger.Info("config reloaded",
		telemetry.EventField(telemetry.EventConfigReload),
		zap.String("path", w.path),
		zap.String("logLevel", cfg.LogLevel),
	)
	w.onChange(cfg)
}

func timerChan(timer *time.Timer) <-chan time.Time {
	if timer == nil {
		return nil
	}
	return timer.C
}
