package bookmarks

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"igfd/internal/log"
)

// Watch reports changes to the store file until stop is closed. Each
// receive on the returned channel means the file was written, created,
// or renamed-over (the atomic Save path) and should be re-Loaded.
// Notifications are coalesced: a burst of events yields at least one
// receive, not one per event. The channel closes when stop does.
//
// The parent directory is watched rather than the file itself so the
// rename performed by Save, and recreation after deletion, stay visible.
func (s *Store) Watch(stop <-chan struct{}) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create bookmark watcher: %w", err)
	}
	dir := filepath.Dir(s.Path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	target := filepath.Clean(s.Path)
	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		defer watcher.Close()
		for {
			select {
			case <-stop:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				select {
				case changes <- struct{}{}:
				default: // a notification is already pending
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warnf("bookmark watcher: %v", err)
			}
		}
	}()

	return changes, nil
}
