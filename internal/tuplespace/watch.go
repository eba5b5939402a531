package tuplespace

import (
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// dirWatch is the optional fsnotify fast path described in SPEC_FULL.md
// §4.8. It is never consulted for correctness, only for latency: a blocked
// rd/inp poll loop normally wakes on a fixed 100ms tick (the spec-mandated
// fallback), and dirWatch just gives it a chance to wake sooner when the
// directory actually changed.
//
// Grounded on zeoday-chatlog/pkg/filemonitor/filemonitor.go's
// fsnotify.Watcher-per-directory wrapper and its "watcher failure never
// blocks the caller" posture — not grounded on the teacher, which has no
// filesystem watcher at all.
type dirWatch struct {
	once    sync.Once
	watcher *fsnotify.Watcher
	events  chan struct{}
	log     zerolog.Logger
}

func newDirWatch(log zerolog.Logger) *dirWatch {
	return &dirWatch{log: log}
}

// signal returns a channel that receives a value shortly after dir changes.
// It lazily starts the underlying fsnotify watcher on first call; if the
// watcher can't be started the returned channel is simply never written to,
// and callers fall back to their ticker alone.
func (d *dirWatch) signal(dir string) <-chan struct{} {
	d.once.Do(func() { d.start(dir) })
	return d.events
}

func (d *dirWatch) start(dir string) {
	d.events = make(chan struct{}, 1)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		d.log.Debug().Err(err).Msg("watch: fsnotify unavailable, falling back to pure polling")
		return
	}
	if err := w.Add(dir); err != nil {
		d.log.Debug().Err(err).Msg("watch: failed to watch tuple directory, falling back to pure polling")
		w.Close()
		return
	}
	d.watcher = w

	go func() {
		for {
			select {
			case _, ok := <-w.Events:
				if !ok {
					return
				}
				select {
				case d.events <- struct{}{}:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
}

// close tears down the watcher, if one was started.
func (d *dirWatch) close() {
	if d.watcher != nil {
		d.watcher.Close()
	}
}
