package catalog

import (
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last write before
// reloading. Editors often emit several events for a single save.
const DefaultDebounce = 100 * time.Millisecond

// ReloadFunc receives the freshly loaded catalog, or the error that
// prevented loading it.
type ReloadFunc func(*Catalog, error)

// Watcher reloads a catalog file whenever it changes on disk.
type Watcher struct {
	path     string
	watcher  *fsnotify.Watcher
	onReload ReloadFunc
	debounce time.Duration

	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewWatcher creates a watcher for the catalog at path. The parent
// directory is watched so that editors that replace the file on save are
// still noticed.
func NewWatcher(path string, onReload ReloadFunc) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	return &Watcher{
		path:     abs,
		watcher:  fw,
		onReload: onReload,
		debounce: DefaultDebounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// SetDebounce sets the quiet period before a change is reloaded. It must be
// called before Start; non-positive values keep the current setting.
func (w *Watcher) SetDebounce(d time.Duration) {
	if d > 0 && !w.started.Load() {
		w.debounce = d
	}
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	if w.started.Swap(true) {
		return
	}
	go w.watchLoop()
}

// Stop stops the watcher and waits for the loop to exit. It is safe to call
// more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		_ = w.watcher.Close()
	})
	if w.started.Load() {
		<-w.doneCh
	}
}

func (w *Watcher) watchLoop() {
	defer close(w.doneCh)

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			c, err := Load(w.path)
			if w.onReload != nil {
				w.onReload(c, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if w.onReload != nil {
				w.onReload(nil, err)
			}
		}
	}
}
