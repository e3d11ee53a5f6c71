package main

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/kylesnowschwartz/tail-inspections/library"

	tea "charm.land/bubbletea/v2"
	"github.com/fsnotify/fsnotify"
)

// watcherDebounce is the quiet period after the last write event before the
// catalog is re-read. Editors and exporters often write a file in several
// steps; this coalesces them into one reload.
const watcherDebounce = 300 * time.Millisecond

// catalogReloadMsg carries a freshly loaded catalog.
type catalogReloadMsg struct {
	catalog *library.Catalog
}

// catalogErrMsg reports a failed load or a watcher error.
type catalogErrMsg struct {
	err error
}

// catalogWatcher watches the catalog file and pushes reloaded catalogs
// through sub. It watches the parent directory rather than the file, so
// editors that save by rename-and-replace keep triggering events.
//
// Reloads happen on the run() goroutine only; the debounce timer just
// signals it.
type catalogWatcher struct {
	path    string
	sub     chan *library.Catalog
	errc    chan error
	done    chan struct{}
	signals chan struct{} // debounced reload trigger; capacity 1

	mu       sync.Mutex
	debounce *time.Timer
	stopOnce sync.Once
}

func newCatalogWatcher(path string) *catalogWatcher {
	return &catalogWatcher{
		path:    path,
		sub:     make(chan *library.Catalog, 1),
		errc:    make(chan error, 1),
		done:    make(chan struct{}),
		signals: make(chan struct{}, 1),
	}
}

// stop signals the watcher goroutine to exit. Safe to call more than once.
func (w *catalogWatcher) stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.debounce != nil {
			w.debounce.Stop()
		}
		w.mu.Unlock()
	})
}

// sendSignal does a non-blocking send on the signals channel.
func (w *catalogWatcher) sendSignal() {
	select {
	case w.signals <- struct{}{}:
	default:
	}
}

// run starts the fsnotify loop. Intended to be called as a goroutine.
// Closes sub and errc on exit so pending wait Cmds unblock.
func (w *catalogWatcher) run() {
	defer close(w.sub)
	defer close(w.errc)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		w.errc <- err
		return
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		w.errc <- err
		return
	}
	target := filepath.Clean(w.path)

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.mu.Lock()
			if w.debounce != nil {
				w.debounce.Stop()
			}
			w.debounce = time.AfterFunc(watcherDebounce, w.sendSignal)
			w.mu.Unlock()

		case <-w.signals:
			c, err := library.LoadCatalog(w.path)
			if err != nil {
				w.pushErr(err)
				continue
			}
			w.push(c)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.pushErr(err)
		}
	}
}

// push delivers a catalog, replacing any stale one still waiting.
func (w *catalogWatcher) push(c *library.Catalog) {
	select {
	case w.sub <- c:
	default:
		select {
		case <-w.sub:
		default:
		}
		select {
		case w.sub <- c:
		case <-w.done:
		}
	}
}

// pushErr reports an error without blocking; a pending error wins.
func (w *catalogWatcher) pushErr(err error) {
	select {
	case w.errc <- err:
	default:
	}
}

// waitForCatalog returns a Cmd that waits for the next reloaded catalog.
func waitForCatalog(sub chan *library.Catalog) tea.Cmd {
	return func() tea.Msg {
		c, ok := <-sub
		if !ok {
			return nil
		}
		return catalogReloadMsg{catalog: c}
	}
}

// waitForWatcherErr returns a Cmd that waits for the next watcher error.
func waitForWatcherErr(errc chan error) tea.Cmd {
	return func() tea.Msg {
		err, ok := <-errc
		if !ok {
			return nil
		}
		return catalogErrMsg{err: err}
	}
}

// loadCatalogCmd reloads the catalog on demand.
func loadCatalogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		c, err := library.LoadCatalog(path)
		if err != nil {
			return catalogErrMsg{err: err}
		}
		return catalogReloadMsg{catalog: c}
	}
}
