package library

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/cubic-knight/proofedit/internal/obs"
)

// Watcher re-Loads a library file whenever it changes on disk, grounded
// on the teacher's config hot-reload (cmd/vision3/config_watcher.go,
// internal/config's fsnotify usage). It is additive infrastructure for
// the multi-session SSH server: single-shot local editing never
// constructs one.
type Watcher struct {
	path    string
	fsw     *fsnotify.Watcher
	updates chan *Catalogue
	errs    chan error
	done    chan struct{}
}

// NewWatcher starts watching the directory containing path and performs
// an initial Load.
func NewWatcher(path string) (*Watcher, *Catalogue, error) {
	cat, err := Load(path)
	if err != nil {
		return nil, nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, nil, err
	}
	w := &Watcher{
		path:    path,
		fsw:     fsw,
		updates: make(chan *Catalogue, 1),
		errs:    make(chan error, 1),
		done:    make(chan struct{}),
	}
	go w.run()
	return w, cat, nil
}

// Updates yields a fresh Catalogue each time the watched file is
// rewritten and successfully reparsed.
func (w *Watcher) Updates() <-chan *Catalogue { return w.updates }

// Errors yields reload failures (the previous Catalogue stays in effect).
func (w *Watcher) Errors() <-chan error { return w.errs }

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}

func (w *Watcher) run() {
	target := filepath.Clean(w.path)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
				continue
			}
			cat, err := Load(w.path)
			if err != nil {
				obs.Debug("library: reload of %s failed: %v", w.path, err)
				select {
				case w.errs <- err:
				default:
				}
				continue
			}
			select {
			case w.updates <- cat:
			default:
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			obs.Debug("library: watcher error: %v", err)
		}
	}
}
