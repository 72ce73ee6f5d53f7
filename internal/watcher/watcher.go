// Package watcher keeps the catalog in sync with a library directory on
// disk. It performs a full scan at startup and then follows filesystem
// notifications, debouncing bursts per path before reconciling each file
// against the store.
package watcher

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vidkeep/vidkeep/internal/events"
	"github.com/vidkeep/vidkeep/internal/library"
)

// videoExtensions are the file extensions treated as videos.
var videoExtensions = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".avi":  true,
	".mov":  true,
	".webm": true,
	".m4v":  true,
	".wmv":  true,
	".ts":   true,
}

// DefaultDebounce is how long a path must stay quiet before it is
// reconciled. Copies and downloads generate long bursts of writes.
const DefaultDebounce = 2 * time.Second

// IsVideoFile reports whether name has a recognized video extension.
func IsVideoFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return videoExtensions[ext]
}

// Store is the catalog surface the watcher needs.
type Store interface {
	AddVideo(v *library.VideoRecord) error
	GetVideoByPath(path string) (*library.VideoRecord, error)
	DeleteVideo(id int64) error
}

// Watcher monitors a library root recursively and reconciles file
// appearances and disappearances into the store, publishing VideoAdded and
// VideoRemoved on the bus.
type Watcher struct {
	root     string
	store    Store
	bus      *events.Bus
	logger   *slog.Logger
	debounce time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a watcher for root. Pass 0 for debounce to use
// DefaultDebounce.
func New(root string, store Store, bus *events.Bus, logger *slog.Logger, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		root:     root,
		store:    store,
		bus:      bus,
		logger:   logger,
		debounce: debounce,
		timers:   make(map[string]*time.Timer),
	}
}

// Scan walks the library root once and reconciles every video file found,
// publishing ScanProgress along the way. Files already in the catalog are
// left alone.
func (w *Watcher) Scan(ctx context.Context) error {
	var paths []string
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.logger.Warn("scan skipping path", "path", path, "error", err)
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !d.IsDir() && IsVideoFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", w.root, err)
	}

	for i, path := range paths {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := w.reconcile(path); err != nil {
			w.logger.Warn("scan reconcile failed", "path", path, "error", err)
		}
		if w.bus != nil {
			w.bus.Publish(events.NewScanProgress(i+1, len(paths), path))
		}
	}
	w.logger.Info("library scan complete", "root", w.root, "files", len(paths))
	return nil
}

// Run watches the library root until the context is canceled. Directories
// created while running are picked up and watched too.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	if err := addRecursive(fsw, w.root, w.logger); err != nil {
		return err
	}
	w.logger.Info("watching library", "root", w.root)

	for {
		select {
		case <-ctx.Done():
			w.stopTimers()
			return ctx.Err()
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(fsw, event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

func addRecursive(fsw *fsnotify.Watcher, root string, logger *slog.Logger) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if watchErr := fsw.Add(path); watchErr != nil {
				logger.Warn("cannot watch directory", "path", path, "error", watchErr)
			}
		}
		return nil
	})
}

func (w *Watcher) handleEvent(fsw *fsnotify.Watcher, event fsnotify.Event) {
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			_ = addRecursive(fsw, event.Name, w.logger)
			return
		}
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	if !IsVideoFile(event.Name) {
		return
	}
	w.schedule(event.Name)
}

// schedule arms (or re-arms) the debounce timer for a path. Each path
// settles independently so one long copy doesn't delay unrelated files.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.timers[path]; ok {
		timer.Reset(w.debounce)
		return
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()

		if err := w.reconcile(path); err != nil {
			w.logger.Warn("reconcile failed", "path", path, "error", err)
		}
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for path, timer := range w.timers {
		timer.Stop()
		delete(w.timers, path)
	}
}

// reconcile brings the catalog in line with a single path: a file present
// on disk but absent from the catalog is added, a cataloged file missing
// from disk is removed. A file already cataloged is left untouched.
func (w *Watcher) reconcile(path string) error {
	existing, err := w.store.GetVideoByPath(path)
	if err != nil {
		return fmt.Errorf("lookup %s: %w", path, err)
	}

	info, statErr := os.Stat(path)
	switch {
	case statErr == nil && existing == nil:
		rec := recordFromFile(path, info)
		if err := w.store.AddVideo(rec); err != nil {
			return fmt.Errorf("add %s: %w", path, err)
		}
		w.logger.Info("video added", "path", path, "id", rec.ID)
		if w.bus != nil {
			w.bus.Publish(events.NewVideoAdded(rec))
		}
	case os.IsNotExist(statErr) && existing != nil:
		if err := w.store.DeleteVideo(existing.ID); err != nil {
			return fmt.Errorf("delete %s: %w", path, err)
		}
		w.logger.Info("video removed", "path", path, "id", existing.ID)
		if w.bus != nil {
			w.bus.Publish(events.NewVideoRemoved(existing.ID, path))
		}
	case statErr != nil && !os.IsNotExist(statErr):
		return fmt.Errorf("stat %s: %w", path, statErr)
	}
	return nil
}

// recordFromFile builds a catalog record from what the filesystem knows.
// Duration and codec details come later from probing; the title defaults to
// the filename without extension.
func recordFromFile(path string, info os.FileInfo) *library.VideoRecord {
	name := filepath.Base(path)
	title := strings.TrimSuffix(name, filepath.Ext(name))
	return &library.VideoRecord{
		Filename:  name,
		Title:     title,
		Path:      path,
		SizeBytes: info.Size(),
	}
}
