package storage

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kien39/mil-mang/app/events"
)

// Watcher detects changes made to the state file by another process (the
// legacy client relied on a second browser tab writing the same storage) and
// publishes them on the bus so open views can refresh.
//
// fsnotify on the parent directory is the primary mechanism; a periodic
// re-check is kept as a safety net for filesystems where watch events are
// unreliable.
type Watcher struct {
	store    *FileStore
	bus      *events.Bus
	interval time.Duration
	stop     chan struct{}
}

func NewWatcher(store *FileStore, bus *events.Bus, interval time.Duration) *Watcher {
	return &Watcher{store: store, bus: bus, interval: interval, stop: make(chan struct{})}
}

// Start launches the watch loop in the background.
func (w *Watcher) Start() {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("File watching unavailable, falling back to polling only: %v", err)
		fw = nil
	} else {
		dir := filepath.Dir(w.store.Path())
		if err := os.MkdirAll(dir, 0o755); err == nil {
			if err := fw.Add(dir); err != nil {
				log.Printf("Cannot watch %s, falling back to polling only: %v", dir, err)
				fw.Close()
				fw = nil
			}
		}
	}

	go func() {
		if fw != nil {
			defer fw.Close()
		}
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			var fsEvents chan fsnotify.Event
			var fsErrors chan error
			if fw != nil {
				fsEvents = fw.Events
				fsErrors = fw.Errors
			}
			select {
			case <-w.stop:
				return
			case ev := <-fsEvents:
				if filepath.Clean(ev.Name) != filepath.Clean(w.store.Path()) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				w.check()
			case err := <-fsErrors:
				if err != nil {
					log.Printf("State file watch error: %v", err)
				}
			case <-ticker.C:
				w.check()
			}
		}
	}()
}

// Stop ends the watch loop.
func (w *Watcher) Stop() {
	close(w.stop)
}

func (w *Watcher) check() {
	raw, err := os.ReadFile(w.store.Path())
	if err != nil {
		return
	}
	if w.store.WrittenByUs(raw) {
		return
	}
	changed, err := w.store.Reload()
	if err != nil {
		log.Printf("Reloading state file failed: %v", err)
		return
	}
	for _, key := range changed {
		w.bus.Publish(events.TopicStorageExternal, key)
	}
}
