package store

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/lazyvibe/formpages/internal/logger"
	"go.uber.org/zap"
)

// FileWatcher reports writes to a single file. Bursts of events are
// coalesced into one notification.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	events  chan struct{}
	log     *zap.Logger
}

// NewFileWatcher starts watching path. The parent directory is watched so
// editors that replace the file on save are still observed.
func NewFileWatcher(path string, l *zap.Logger) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &FileWatcher{
		watcher: watcher,
		path:    abs,
		events:  make(chan struct{}, 1),
		log:     logger.Module(l, "watch"),
	}
	go w.run()
	return w, nil
}

// Events delivers one value per burst of changes. It is closed when the
// watcher stops.
func (w *FileWatcher) Events() <-chan struct{} {
	return w.events
}

// Close stops watching.
func (w *FileWatcher) Close() error {
	return w.watcher.Close()
}

func (w *FileWatcher) run() {
	defer close(w.events)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if abs, _ := filepath.Abs(event.Name); abs != w.path {
				continue
			}
			select {
			case w.events <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.Error(err))
		}
	}
}
