// Package watcher implements per-file change notifications on top of fsnotify.
package watcher

import (
	"context"
	"fmt"
	"iter"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/helmvals/internal/core/domain"
	"go.trai.ch/helmvals/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements ports.Watcher using fsnotify.
//
// Watches are placed on the parent directory of each file so that editors
// replacing a file through rename keep being observed; events for other
// entries of those directories are dropped. The fsnotify watcher is created
// by Start, and paths requested before that are watched once it runs.
type Watcher struct {
	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	files     map[string]struct{}
	dirs      map[string]struct{}
	events    chan ports.WatchEvent
	logger    ports.Logger
}

// NewWatcher creates a new file watcher.
func NewWatcher(logger ports.Logger) *Watcher {
	return &Watcher{
		files:  make(map[string]struct{}),
		dirs:   make(map[string]struct{}),
		events: make(chan ports.WatchEvent, eventChannelBuffer),
		logger: logger,
	}
}

// Start begins delivering events until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}

	w.mu.Lock()
	w.fsWatcher = fsWatcher
	pending := make([]string, 0, len(w.files))
	for file := range w.files {
		pending = append(pending, file)
	}
	w.mu.Unlock()

	for _, file := range pending {
		if err := w.addDir(filepath.Dir(file)); err != nil {
			w.logger.Warn(fmt.Sprintf("not watching %s for changes: %v", file, err))
		}
	}

	go w.processEvents(ctx, fsWatcher)

	return nil
}

// Watch requests notifications for path. Watching a path twice is a no-op.
func (w *Watcher) Watch(path string) error {
	path = filepath.Clean(path)

	w.mu.Lock()
	if _, ok := w.files[path]; ok {
		w.mu.Unlock()
		return nil
	}
	w.files[path] = struct{}{}
	started := w.fsWatcher != nil
	w.mu.Unlock()

	if !started {
		return nil
	}

	if err := w.addDir(filepath.Dir(path)); err != nil {
		w.mu.Lock()
		delete(w.files, path)
		w.mu.Unlock()
		return err
	}
	return nil
}

// Stop stops the watcher and releases all watches.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher == nil {
		return nil
	}
	err := w.fsWatcher.Close()
	w.fsWatcher = nil
	clear(w.dirs)
	return err
}

// Events returns an iterator of file system events.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// addDir watches dir unless it is already watched.
func (w *Watcher) addDir(dir string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.dirs[dir]; ok || w.fsWatcher == nil {
		return nil
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", dir)
	}
	w.dirs[dir] = struct{}{}
	return nil
}

// watched reports whether path was requested through Watch.
func (w *Watcher) watched(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.files[filepath.Clean(path)]
	return ok
}

// processEvents converts raw fsnotify events for watched files to ports.WatchEvent.
func (w *Watcher) processEvents(ctx context.Context, fsWatcher *fsnotify.Watcher) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}
			if !w.watched(event.Name) {
				continue
			}

			watchEvent, ok := convertEvent(event)
			if !ok {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(fmt.Sprintf("watcher: file system error: %v", err))
		}
	}
}

// convertEvent converts an fsnotify event to a ports.WatchEvent.
// Events carrying only a permission change are dropped.
func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	path := filepath.Clean(event.Name)

	switch {
	case event.Has(fsnotify.Write):
		return ports.WatchEvent{Path: path, Operation: ports.OpWrite}, true
	case event.Has(fsnotify.Create):
		return ports.WatchEvent{Path: path, Operation: ports.OpCreate}, true
	case event.Has(fsnotify.Remove):
		return ports.WatchEvent{Path: path, Operation: ports.OpRemove}, true
	case event.Has(fsnotify.Rename):
		return ports.WatchEvent{Path: path, Operation: ports.OpRename}, true
	default:
		return ports.WatchEvent{}, false
	}
}
