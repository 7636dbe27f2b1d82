package keybind

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher rebuilds a binding table whenever a bindings file changes on
// disk. Each relevant change re-runs the derived-plus-file merge and
// delivers the new Table on Tables; the old table is discarded, never
// mutated. Merge and decode failures are delivered on Errors and the
// previous table stays in effect.
type Watcher struct {
	path    string
	derived map[string]Item

	watcher *fsnotify.Watcher

	tables chan *Table
	errs   chan error

	mu      sync.Mutex
	closed  bool
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// Watch starts watching a bindings file. The file's directory is
// watched rather than the file itself, so editors that replace the
// file atomically (write to a temp file, then rename) still trigger a
// reload, and the file may not exist yet. The derived set is reused
// for every merge.
//
// Watch does not deliver an initial table; load one with MergeFile
// first.
func Watch(path string, derived map[string]Item) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving bindings path %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	dir := filepath.Dir(absPath)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		path:    absPath,
		derived: derived,
		watcher: fsw,
		tables:  make(chan *Table, 1),
		errs:    make(chan error, 1),
		closeCh: make(chan struct{}),
	}

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Path returns the absolute path of the watched bindings file.
func (w *Watcher) Path() string {
	return w.path
}

// Tables returns the channel of rebuilt tables. Only the most recent
// table is retained if the consumer falls behind.
func (w *Watcher) Tables() <-chan *Table {
	return w.tables
}

// Errors returns the channel of reload errors.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher and closes its channels.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	w.mu.Unlock()

	w.wg.Wait()

	close(w.tables)
	close(w.errs)

	return w.watcher.Close()
}

// processLoop handles incoming fsnotify events.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case fsEvent, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(fsEvent)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// handleFSEvent reloads the table when the watched file changes.
// Removal also reloads: with the override file gone the merge falls
// back to the derived set alone.
func (w *Watcher) handleFSEvent(fsEvent fsnotify.Event) {
	if filepath.Clean(fsEvent.Name) != w.path {
		return
	}
	if !fsEvent.Op.Has(fsnotify.Create) && !fsEvent.Op.Has(fsnotify.Write) &&
		!fsEvent.Op.Has(fsnotify.Rename) && !fsEvent.Op.Has(fsnotify.Remove) {
		return
	}

	table, err := MergeFile(w.derived, w.path)
	if err != nil {
		w.sendError(err)
		return
	}
	w.sendTable(table)
}

// sendTable delivers a rebuilt table, displacing an undelivered one.
func (w *Watcher) sendTable(table *Table) {
	for {
		select {
		case w.tables <- table:
			return
		default:
		}
		select {
		case <-w.tables:
		default:
		}
	}
}

// sendError delivers an error without blocking.
func (w *Watcher) sendError(err error) {
	select {
	case w.errs <- err:
	default:
		// Channel full, drop error
	}
}
