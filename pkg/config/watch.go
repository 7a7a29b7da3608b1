package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits for writes to settle.
const DefaultDebounce = 250 * time.Millisecond

// Watch reloads the preferences at path whenever the file is written and
// sends the result on the returned channel. Bursts of events within debounce
// cause a single reload. Files that fail to load are logged and skipped. The
// channel is closed once ctx is done.
func Watch(ctx context.Context, path string, debounce time.Duration) (<-chan *Preferences, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	// Editors replace files on save, so watch the directory.
	dir := filepath.Dir(path)
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching directory %s: %w", dir, err)
	}

	out := make(chan *Preferences, 1)
	go watchLoop(ctx, fsw, path, debounce, out)
	return out, nil
}

func watchLoop(ctx context.Context, fsw *fsnotify.Watcher, path string, debounce time.Duration, out chan *Preferences) {
	defer close(out)
	defer fsw.Close()

	base := filepath.Base(path)
	timer := time.NewTimer(debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 || filepath.Base(event.Name) != base {
				continue
			}
			timer.Reset(debounce)

		case <-timer.C:
			p, err := Load(path)
			if err != nil {
				log.Printf("Preferences not reloaded: %v", err)
				continue
			}
			// Keep only the newest reload if the reader is behind.
			select {
			case <-out:
			default:
			}
			out <- p

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			log.Printf("Preferences watcher: %v", err)
		}
	}
}
