package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/mchmarny/breve/pkg/menu"
)

// load reads and parses the menu file, replacing the served spec on success.
func (s *server) load() error {
	data, err := os.ReadFile(s.menuFile)
	if err != nil {
		return fmt.Errorf("failed to read menu %s: %w", s.menuFile, err)
	}
	spec, err := menu.ParseSpec(data)
	if err != nil {
		return fmt.Errorf("failed to parse menu %s: %w", s.menuFile, err)
	}

	s.mu.Lock()
	s.spec, s.raw = spec, data
	s.mu.Unlock()
	return nil
}

// reload is load for the watcher: a broken file keeps the previous spec.
func (s *server) reload() {
	if err := s.load(); err != nil {
		s.reloads.Increment("error")
		slog.Warn("menu reload failed, keeping previous menu", "error", err)
		return
	}
	s.reloads.Increment("ok")
	slog.Info("menu reloaded", "menu", s.menuFile, "items", s.current().Len())
}

func (s *server) current() *menu.Spec {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.spec
}

func (s *server) currentRaw() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.raw
}

// watch reloads the menu whenever its file changes, until ctx is done. The
// directory is watched rather than the file so editors that save by renaming
// a temp file over the original are picked up.
func (s *server) watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create menu watcher: %w", err)
	}
	defer w.Close()

	dir := filepath.Dir(s.menuFile)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	slog.Debug("watching menu file", "menu", s.menuFile, "dir", dir)

	target := filepath.Clean(s.menuFile)
	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(evt.Name) != target {
				continue
			}
			if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) {
				continue
			}
			slog.Debug("menu file changed", "op", evt.Op.String())
			s.reload()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("menu watcher error", "error", err)
		}
	}
}
