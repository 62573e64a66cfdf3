package site

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alnah/go-md2post/internal/content"
)

// DefaultDebounce groups bursts of file events into one reload.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a Library when files under its directory change.
type Watcher struct {
	lib      *content.Library
	debounce time.Duration
	log      *slog.Logger
	onReload func(content.ReloadStats, error)
}

// NewWatcher creates a Watcher. onReload, if non-nil, is called after each
// reload attempt.
func NewWatcher(lib *content.Library, debounce time.Duration, log *slog.Logger, onReload func(content.ReloadStats, error)) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = slog.Default()
	}
	return &Watcher{lib: lib, debounce: debounce, log: log, onReload: onReload}
}

// Run watches until ctx is done. fsnotify is not recursive, so the content
// directory and each post directory are watched, and directories created
// later are added as they appear.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = fw.Close() }()

	if err := addTree(fw, w.lib.Dir()); err != nil {
		return err
	}

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := addTree(fw, ev.Name); err != nil {
						w.log.Warn("watch failed", "path", ev.Name, "error", err)
					}
				}
			}
			if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watcher error", "error", err)

		case <-timer.C:
			stats, err := w.lib.Reload(ctx)
			if err != nil {
				w.log.Error("reload failed", "error", err)
			}
			if w.onReload != nil {
				w.onReload(stats, err)
			}
		}
	}
}

// addTree watches root and every directory below it.
func addTree(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
}
