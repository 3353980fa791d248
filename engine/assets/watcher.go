package assets

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/age/engine/core"
)

// Watcher reports files created or modified below a root directory.
// New sub-directories are picked up as they appear.
type Watcher struct {
	fsnotify *fsnotify.Watcher
	filter   func(path string) bool
	isClosed bool

	done    chan struct{}
	changes chan string
}

// NewWatcher starts watching root recursively. Only paths accepted by filter
// are reported; a nil filter accepts everything.
func NewWatcher(root string, filter func(path string) bool) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if filter == nil {
		filter = func(string) bool { return true }
	}

	w := &Watcher{
		fsnotify: fsWatch,
		filter:   filter,
		done:     make(chan struct{}),
		changes:  make(chan string, 64),
	}
	if err := w.watchRecursive(root); err != nil {
		fsWatch.Close()
		return nil, err
	}
	go w.start()

	return w, nil
}

// Changes delivers the path of every changed file. The channel is closed by Close.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

func (w *Watcher) Close() error {
	if w.isClosed {
		return errors.New("asset watcher already closed")
	}
	w.isClosed = true
	close(w.done)
	return nil
}

func (w *Watcher) start() {
	defer close(w.changes)
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			s, err := os.Stat(e.Name)
			if err == nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					if err := w.watchRecursive(e.Name); err != nil {
						core.LogWarn("failed to watch new asset directory %s: %s", e.Name, err)
					}
				}
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 && w.filter(e.Name) {
				select {
				case w.changes <- e.Name:
				case <-w.done:
					w.fsnotify.Close()
					return
				}
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %s", err)

		case <-w.done:
			w.fsnotify.Close()
			return
		}
	}
}

// watchRecursive adds root and every directory below it to the watch list.
func (w *Watcher) watchRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fsnotify.Add(path)
		}
		return nil
	})
}
