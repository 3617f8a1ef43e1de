package config

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	statusled "github.com/Bluscream/rgb-status-led"
	"github.com/Bluscream/rgb-status-led/logging"
)

const defaultDebounce = 1500 * time.Millisecond

// Watcher watches the configuration file and notifies handlers with a
// freshly loaded, validated configuration on every change. The controller
// Config itself is immutable; hosts typically rebuild the controller from
// the new value inside a handler.
type Watcher struct {
	path     string
	debounce time.Duration
	onError  func(error)

	mu       sync.RWMutex
	handlers []func(statusled.Config)

	watcher *fsnotify.Watcher
	logger  logging.Logger
	ctx     context.Context
	cancel  context.CancelFunc
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the debounce duration for config changes.
// Default is 1500ms.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithErrorHandler sets a callback for config load errors.
// If not set, errors are only logged.
func WithErrorHandler(handler func(error)) WatcherOption {
	return func(w *Watcher) {
		w.onError = handler
	}
}

// NewWatcher creates a configuration file watcher. The file is re-read
// through Load on every change, so handlers never receive stale data.
func NewWatcher(path string, logger logging.Logger, opts ...WatcherOption) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		debounce: defaultDebounce,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// OnReload registers a handler called with the new configuration after
// each change. Returns an unsubscribe function.
func (w *Watcher) OnReload(handler func(statusled.Config)) func() {
	w.mu.Lock()
	w.handlers = append(w.handlers, handler)
	idx := len(w.handlers) - 1
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if idx < len(w.handlers) {
			w.handlers[idx] = nil
		}
	}
}

// Start begins watching the configuration file for changes.
func (w *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = watcher

	if addErr := watcher.Add(w.path); addErr != nil {
		watcher.Close()
		return addErr
	}

	w.logger.Info("Config watcher started", "path", w.path, "debounce", w.debounce)
	go w.watch()
	return nil
}

// Stop stops watching and cleans up resources.
func (w *Watcher) Stop() error {
	w.cancel()
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}

// watch is the main loop that listens for file changes.
func (w *Watcher) watch() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			w.logger.Debug("Config watcher stopped")
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// Write events are the common case; some editors replace
			// the file, which surfaces as a create.
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.logger.Debug("Config file change detected", "op", event.Op.String())

				if timer != nil {
					timer.Stop()
				}
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			}

		case <-timerC:
			w.logger.Info("Config file changed, loading and notifying handlers")
			w.loadAndNotify()
			timerC = nil

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Config watcher error", "error", err)
		}
	}
}

// loadAndNotify loads the config fresh and notifies all handlers.
func (w *Watcher) loadAndNotify() {
	cfg, _, err := Load(w.path)
	if err != nil {
		w.logger.Warn("Failed to load config", "error", err)
		if w.onError != nil {
			w.onError(err)
		}
		return
	}

	w.mu.RLock()
	handlers := make([]func(statusled.Config), 0, len(w.handlers))
	for _, h := range w.handlers {
		if h != nil {
			handlers = append(handlers, h)
		}
	}
	w.mu.RUnlock()

	for _, handler := range handlers {
		handler(cfg)
	}
}
