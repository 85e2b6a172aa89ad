package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch converts every input once and then reconverts files as they change
// until ctx is cancelled. Events for the same file inside the debounce
// window collapse into one conversion.
func (r *Runner) Watch(ctx context.Context) error {
	if _, err := r.Convert(ctx); err != nil {
		r.Log.Warn("initial conversion had failures", "err", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := addTree(w, r.Config.Path); err != nil {
		return err
	}
	r.Log.Info("watching", "path", r.Config.Path, "ext", r.Config.ReadExt)

	debounce := r.Config.Debounce
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}
	var (
		mu     sync.Mutex
		timers = map[string]*time.Timer{}
	)
	defer func() {
		mu.Lock()
		for _, t := range timers {
			t.Stop()
		}
		mu.Unlock()
	}()
	schedule := func(path string) {
		mu.Lock()
		defer mu.Unlock()
		if t, ok := timers[path]; ok {
			t.Stop()
		}
		timers[path] = time.AfterFunc(debounce, func() {
			mu.Lock()
			delete(timers, path)
			mu.Unlock()
			if _, err := r.ConvertFile(path); err != nil {
				r.Log.Error("failed", "file", path, "err", err)
				return
			}
			r.Log.Info("reconverted", "file", path)
		})
	}

	pattern := r.Config.Pattern()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addTree(w, ev.Name); err != nil {
						r.Log.Warn("failed to watch directory", "dir", ev.Name, "err", err)
					}
					continue
				}
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if Matches(filepath.Base(ev.Name), r.Config.ReadExt, pattern) {
				schedule(ev.Name)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.Log.Error("watcher error", "err", err)
		}
	}
}

// addTree watches root and every directory below it.
func addTree(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}
