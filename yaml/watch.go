package yaml

import (
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Event pairs a reparsed document with the error from parsing it, so a
// malformed file can be reported without tearing down the watch.
type Event struct {
	Parsed *Parsed
	Err    error
}

// Watcher reparses a file every time it is written and delivers the
// result on Events. Callers must call Close to stop the underlying
// fsnotify watcher and its goroutine.
type Watcher struct {
	fsw    *fsnotify.Watcher
	Events chan Event
	done   chan struct{}
}

// WatchFile starts watching path and delivers an initial parse
// immediately, followed by one Event per subsequent write.
func WatchFile(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "goyaml: create watcher")
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "goyaml: watch %s", path)
	}

	w := &Watcher{fsw: fsw, Events: make(chan Event, 1), done: make(chan struct{})}

	go w.run(path)

	parsed, err := ParseFromFile(path)
	w.Events <- Event{Parsed: parsed, Err: err}

	return w, nil
}

func (w *Watcher) run(path string) {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			parsed, err := ParseFromFile(path)
			if err != nil {
				log.WithError(err).WithField("path", path).Warn("goyaml: watch reparse failed")
			}
			w.Events <- Event{Parsed: parsed, Err: err}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.Events <- Event{Err: errors.Wrap(err, "goyaml: watch error")}
		}
	}
}

// Close stops the watcher and closes Events.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fsw.Close()
	close(w.Events)
	return err
}
