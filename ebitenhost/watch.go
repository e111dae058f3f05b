package ebitenhost

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/phanxgames/inkwell"
)

// configUpdate is the result of re-reading a watched config file.
type configUpdate struct {
	cfg inkwell.Config
	err error
}

// configWatcher reloads a config file whenever it changes on disk. Reloads
// happen on the watcher goroutine; only the parsed result crosses over to
// the game loop, which picks it up with poll.
type configWatcher struct {
	path    string
	w       *fsnotify.Watcher
	updates chan configUpdate
	done    chan struct{}
}

// watchConfig starts watching path. The parent directory is watched rather
// than the file itself so editors that save by rename are still seen.
func watchConfig(path string) (*configWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch config: %w", err)
	}

	cw := &configWatcher{
		path:    filepath.Clean(abs),
		w:       w,
		updates: make(chan configUpdate, 1),
		done:    make(chan struct{}),
	}
	go cw.loop()
	return cw, nil
}

func (cw *configWatcher) loop() {
	defer close(cw.done)
	for {
		select {
		case event, ok := <-cw.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := inkwell.LoadConfig(cw.path)
			cw.publish(configUpdate{cfg: cfg, err: err})
		case err, ok := <-cw.w.Errors:
			if !ok {
				return
			}
			cw.publish(configUpdate{err: fmt.Errorf("watch config: %w", err)})
		}
	}
}

// publish hands u to the game loop, replacing any update it has not yet
// picked up.
func (cw *configWatcher) publish(u configUpdate) {
	for {
		select {
		case cw.updates <- u:
			return
		default:
		}
		select {
		case <-cw.updates:
		default:
		}
	}
}

// poll returns the latest pending update without blocking.
func (cw *configWatcher) poll() (configUpdate, bool) {
	select {
	case u := <-cw.updates:
		return u, true
	default:
		return configUpdate{}, false
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (cw *configWatcher) Close() error {
	err := cw.w.Close()
	<-cw.done
	return err
}
