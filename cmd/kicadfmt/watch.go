package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watch checks paths, then again each time one of them is written, until
// ctx is done. Directories are watched instead of the files so editors
// that replace a file on save are followed.
func (a *app) watch(ctx context.Context, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]string, len(paths))
	dirs := make(map[string]bool)

	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}

		watched[abs] = p

		dir := filepath.Dir(abs)
		if !dirs[dir] {
			if err := watcher.Add(dir); err != nil {
				return fmt.Errorf("watching %s: %w", dir, err)
			}

			dirs[dir] = true
		}
	}

	a.recheck(ctx, paths)

	pending := make(map[string]bool)
	timer := time.NewTimer(a.cfg.Watch.Debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			a.log.Warn("watch error", "error", err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			p, ok := watched[filepath.Clean(ev.Name)]
			if !ok || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}

			a.log.Debug("changed", "file", p, "op", ev.Op.String())

			if len(pending) == 0 {
				timer.Reset(a.cfg.Watch.Debounce)
			}

			pending[p] = true
		case <-timer.C:
			changed := make([]string, 0, len(pending))
			for p := range pending {
				if fileExists(p) {
					changed = append(changed, p)
				}
			}

			clear(pending)
			sort.Strings(changed)

			if len(changed) > 0 {
				a.recheck(ctx, changed)
			}
		}
	}
}

func (a *app) recheck(ctx context.Context, paths []string) {
	diags, err := a.checkFiles(ctx, paths)
	if err != nil {
		return
	}

	if err := a.report(diags); err != nil && !errors.Is(err, errCheckFailed) {
		a.log.Warn("report failed", "error", err)
	}

	if diags.IsValid() {
		fmt.Fprintf(a.stderr, "%s ok\n", filesNoun(len(paths)))
	}
}

func filesNoun(n int) string {
	if n == 1 {
		return "1 file"
	}

	return fmt.Sprintf("%d files", n)
}
