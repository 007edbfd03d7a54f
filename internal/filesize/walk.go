package filesize

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/charlievieth/fastwalk"
	"github.com/charmbracelet/log"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// ErrNotTraversable is returned when the scan root is neither a directory nor a regular file.
var ErrNotTraversable = errors.New("not a directory or regular file")

// walker holds the state shared by the serial and parallel walks.
type walker struct {
	root      string
	excludes  []*regexp.Regexp
	minSize   int64
	strict    bool
	log       *log.Logger
	collector *collector
}

// relative returns path relative to the scan root, in slash form.
func (w *walker) relative(path string) string {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}

	return filepath.ToSlash(rel)
}

// excluded reports whether rel matches any exclusion regex.
func (w *walker) excluded(rel string) bool {
	for _, re := range w.excludes {
		if re.MatchString(rel) {
			w.log.Debug("excluding", "path", rel, "regex", re.String())

			return true
		}
	}

	return false
}

// record adds a regular file to the collector if it passes the size filter.
func (w *walker) record(rel string, size int64) {
	if size < w.minSize {
		w.log.Debug("skipping file below minimum size", "path", rel, "size", size)

		return
	}

	w.collector.add(rel, size)
}

// unreadable handles an error on a descendant of the root: fatal in strict mode,
// otherwise logged and counted.
func (w *walker) unreadable(path string, err error) error {
	if w.strict {
		return fmt.Errorf("reading %q: %w", path, err)
	}

	w.log.Warn("skipping unreadable entry", "path", path, "err", err)
	w.collector.addError()

	return nil
}

// visit processes one directory entry. It reports whether the entry is a
// directory that should be descended into.
func (w *walker) visit(path string, entry fs.DirEntry) (bool, error) {
	rel := w.relative(path)

	if w.excluded(rel) {
		return false, nil
	}

	switch {
	case entry.IsDir():
		return true, nil
	case entry.Type().IsRegular():
		info, err := entry.Info()
		if err != nil {
			return false, w.unreadable(path, err)
		}

		w.record(rel, info.Size())
	default:
		w.log.Debug("skipping non-regular file", "path", rel, "mode", entry.Type().String())
	}

	return false, nil
}

// serial walks the tree on the calling goroutine using an explicit stack,
// so nesting depth does not grow the call stack.
func (w *walker) serial(ctx context.Context) error {
	stack := []string{w.root}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(dir)
		if err != nil {
			if dir == w.root {
				return fmt.Errorf("reading %q: %w", dir, err)
			}

			if err := w.unreadable(dir, err); err != nil {
				return err
			}

			continue
		}

		// Push in reverse so children are popped in name order.
		for i := len(entries) - 1; i >= 0; i-- {
			path := filepath.Join(dir, entries[i].Name())

			descend, err := w.visit(path, entries[i])
			if err != nil {
				return err
			}

			if descend {
				stack = append(stack, path)
			}
		}
	}

	return nil
}

// parallel walks the tree with fastwalk. Callbacks run on several goroutines.
//
//nolint:varnamelen // d is standard for DirEntry
func (w *walker) parallel(ctx context.Context) error {
	conf := &fastwalk.Config{
		Follow: false,
	}

	return fastwalk.Walk(conf, w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == w.root {
				return fmt.Errorf("reading %q: %w", path, err)
			}

			return w.unreadable(path, err)
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if path == w.root {
			return nil
		}

		descend, err := w.visit(path, d)
		if err != nil {
			return err
		}

		if d.IsDir() && !descend {
			return filepath.SkipDir
		}

		return nil
	})
}

// startProgressReporter invokes hook(files, bytes) on each tick until ctx is done.
//
//nolint:varnamelen // c is idiomatic for collector
func startProgressReporter(ctx context.Context, c *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.counters())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Walk collects the size of every regular file under opt.Path, keyed by its
// path relative to opt.Path.
//
// The scan root must exist and be readable; otherwise an error is returned.
// If the root is itself a regular file, the result holds that single file
// keyed by its base name. Symlinks are never followed or recorded.
// Unreadable descendants are skipped with a warning unless opt.Strict is set.
//
// The walk can be cancelled via ctx. Progress updates are sent to
// progressHook if provided. A nil logger discards diagnostics.
func Walk(ctx context.Context, opt Options, logger *log.Logger, progressHook func(int64, int64)) (*Result, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if opt.Path == "" {
		opt.Path = "."
	}

	root := filepath.Clean(opt.Path)

	excludes := make([]*regexp.Regexp, 0, len(opt.Excludes))

	for _, p := range opt.Excludes {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling exclusion pattern %q: %w", p, err)
		}

		excludes = append(excludes, re)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", root, err)
	}

	w := &walker{
		root:      root,
		excludes:  excludes,
		minSize:   opt.MinSize,
		strict:    opt.Strict,
		log:       logger,
		collector: newCollector(),
	}

	start := time.Now()

	switch {
	case info.Mode().IsRegular():
		w.record(filepath.Base(root), info.Size())
	case info.IsDir():
		// Opening fails early for a root without read permission.
		dir, err := os.Open(root)
		if err != nil {
			return nil, fmt.Errorf("opening %q: %w", root, err)
		}

		_ = dir.Close()

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		startProgressReporter(ctx, w.collector, progressHook, opt.ProgressInterval)

		logger.Debug("walking", "root", root, "parallel", opt.Parallel, "excludes", len(excludes))

		if opt.Parallel {
			err = w.parallel(ctx)
		} else {
			err = w.serial(ctx)
		}

		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("path %q: %w", root, ErrNotTraversable)
	}

	result := w.collector.finalize()
	result.Elapsed = time.Since(start)

	return result, nil
}
