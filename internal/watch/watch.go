// ============================================================================
// plzero - PL/0 Lexical Analyzer
// ============================================================================
//
// Package:     watch
// Description: Source file watching for re-scanning on change
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package watch

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	plerror "github.com/msto63/plzero/foundation/core/error"
	mdwlog "github.com/msto63/plzero/foundation/core/log"
)

// DefaultDebounce collapses the burst of events an editor save produces
const DefaultDebounce = 100 * time.Millisecond

// Handler is called with the path as it was given to New
type Handler func(path string)

// Watcher reports changes of a fixed set of files
type Watcher struct {
	paths    []string
	debounce time.Duration
	logger   *mdwlog.Logger
}

// New creates a watcher for paths. A nil logger discards output.
func New(paths []string, logger *mdwlog.Logger) *Watcher {
	if logger == nil {
		logger = mdwlog.Discard()
	}
	return &Watcher{
		paths:    paths,
		debounce: DefaultDebounce,
		logger:   logger.WithName("watch"),
	}
}

// WithDebounce sets the quiet period before a change is reported
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Run blocks until ctx is done, calling handle once per settled change.
// Handlers run on the calling goroutine, one at a time. The parent
// directories are watched so files replaced by rename are still seen.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return plerror.Wrap(err, "cannot create file watcher").
			WithCode(plerror.CodeInternal).
			WithOperation("watch.Run")
	}
	defer fw.Close()

	targets := make(map[string]string, len(w.paths))
	dirs := make(map[string]bool)
	for _, p := range w.paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return plerror.Wrap(err, "cannot resolve path").
				WithCode(plerror.CodeInvalidInput).
				WithDetail("path", p)
		}
		targets[abs] = p

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fw.Add(dir); err != nil {
			return plerror.Wrap(err, "cannot watch directory").
				WithCode(plerror.CodeOpenFailed).
				WithOperation("watch.Run").
				WithDetail("dir", dir)
		}
		dirs[dir] = true
	}

	w.logger.Debug("watching", mdwlog.Fields{"files": len(targets), "dirs": len(dirs)})

	fire := make(chan string)
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			name, ok := targets[filepath.Clean(ev.Name)]
			if !ok || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			w.logger.Trace("event", mdwlog.Fields{"file": name, "op": ev.Op.String()})

			if t, ok := timers[name]; ok {
				t.Stop()
			}
			timers[name] = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- name:
				case <-ctx.Done():
				}
			})

		case name := <-fire:
			delete(timers, name)
			w.logger.Debug("changed", mdwlog.Fields{"file": name})
			handle(name)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.WarnWithErr("watch error", err)
		}
	}
}
