package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/philipparndt/goobj/pkg/mesh"
	"github.com/philipparndt/goobj/pkg/watcher"
)

// reloadDebounce coalesces the bursts of writes editors produce on save
const reloadDebounce = 500 * time.Millisecond

// Reloader re-reads a mesh file after it changes on disk.
// The file watcher only marks the mesh stale; the frame loop does the
// actual load so that geometry is only ever touched by one goroutine.
type Reloader struct {
	path    string
	stale   atomic.Bool
	watcher *watcher.FileWatcher
	logger  *slog.Logger
}

// NewReloader creates a reloader for the mesh at path
func NewReloader(path string, logger *slog.Logger) *Reloader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reloader{path: path, logger: logger}
}

// Watch marks the mesh stale whenever the file is written, until ctx is done
func (r *Reloader) Watch(ctx context.Context) error {
	fw, err := watcher.NewFileWatcher(r.path, reloadDebounce, func(changed string) {
		r.logger.Info("mesh file changed", "path", changed)
		r.MarkStale()
	}, r.logger)
	if err != nil {
		return fmt.Errorf("failed to set up file watching: %w", err)
	}

	fw.Start(ctx)
	r.watcher = fw
	r.logger.Info("watching file for changes", "path", fw.Path())
	return nil
}

// MarkStale requests a reload on the next frame
func (r *Reloader) MarkStale() {
	r.stale.Store(true)
}

// Reload returns a freshly loaded mesh if the file changed since the last
// call, or current otherwise. A file that fails to load is logged and
// current is kept on screen.
func (r *Reloader) Reload(current *mesh.Mesh) *mesh.Mesh {
	if !r.stale.CompareAndSwap(true, false) {
		return current
	}

	start := time.Now()
	m, err := mesh.Load(r.path)
	if err != nil {
		r.logger.Error("reload failed, keeping previous mesh", "path", r.path, "error", err)
		return current
	}

	r.logger.Info("mesh reloaded",
		"path", r.path,
		"triangles", m.TriangleCount(),
		"elapsed", time.Since(start))
	return m
}

// Close stops watching the file
func (r *Reloader) Close() error {
	if r.watcher == nil {
		return nil
	}
	return r.watcher.Close()
}
