package npurge

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// logger provides conditional debug output.
type logger struct {
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled {
		//nolint:forbidigo // Debug output to console
		fmt.Printf(format, args...)
	}
}

// shouldExcludeByPattern checks if path matches any exclusion regex.
func shouldExcludeByPattern(path string, patterns []*regexp.Regexp) *regexp.Regexp {
	if len(patterns) == 0 {
		return nil
	}

	fPath := filepath.ToSlash(path)

	for _, re := range patterns {
		if re.MatchString(fPath) {
			return re
		}
	}

	return nil
}

// Run searches the tree at opt.Path for directories named in opt.Targets
// and reports or removes each one, returning the aggregated result.
//
// The walk is depth-first and pre-order. A matched directory is never
// descended into: its whole subtree is one unit of measurement and
// removal. Directories that cannot be listed are skipped (and counted),
// failed size probes degrade to zero, and failed removals are recorded
// without aborting the walk.
//
// The walk can be cancelled via ctx; cancellation is observed between
// directory operations and surfaces as the context's error.
func Run(ctx context.Context, opt Options) (*Result, error) {
	opt.setDefaults()

	log := logger{enabled: opt.Debug}

	// Normalize to native format to handle both C:/Path and C:\Path inputs
	opt.Path = filepath.Clean(opt.Path)

	// validate path exists and is accessible
	if statInfo, err := os.Stat(opt.Path); err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", opt.Path, err)
	} else if !statInfo.IsDir() {
		return nil, fmt.Errorf("path %q: %w", opt.Path, ErrNotDirectory)
	}

	// Matches are reported with absolute paths regardless of how the
	// target was given.
	root, err := filepath.Abs(opt.Path)
	if err != nil {
		return nil, fmt.Errorf("resolving absolute path: %w", err)
	}

	targets := make(map[string]struct{}, len(opt.Targets))
	for _, name := range opt.Targets {
		targets[name] = struct{}{}
	}

	excludeRegexes := make([]*regexp.Regexp, 0, len(opt.Excludes))

	for _, p := range opt.Excludes {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling exclusion pattern %q: %w", p, err)
		}

		excludeRegexes = append(excludeRegexes, re)
	}

	log.printf("[debug]: target names:\n")

	for name := range targets {
		log.printf("[debug]:   - %s\n", name)
	}

	log.printf("[debug]: exclude regexes:\n")

	for _, re := range excludeRegexes {
		log.printf("[debug]:   - %s\n", re.String())
	}

	start := time.Now()

	w := &walker{
		opt:      opt,
		targets:  targets,
		excludes: excludeRegexes,
		result:   &Result{},
		log:      log,
	}

	if err := w.walk(ctx, root); err != nil {
		return nil, err
	}

	w.result.Elapsed = time.Since(start)

	return w.result, nil
}

// walker carries the per-run state through the recursive descent.
type walker struct {
	opt      Options
	targets  map[string]struct{}
	excludes []*regexp.Regexp
	result   *Result
	log      logger
}

// walk visits dir in listing order, handling target-named children as
// matches and recursing into the rest. A listing failure skips the
// subtree without contributing anything to the result.
func (w *walker) walk(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.log.printf("[debug]: skipping unreadable directory %s: %v\n", dir, err)
		w.result.SkippedDirs++

		return nil //nolint:nilerr // An unlistable subtree is not actionable
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}

		// Files are never matches. Symlinks are not followed.
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		if matchedPattern := shouldExcludeByPattern(path, w.excludes); matchedPattern != nil {
			w.log.printf("[debug]: excluding directory: %s\n", filepath.ToSlash(path))
			w.log.printf("	 matched regex: %s\n", matchedPattern.String())

			continue
		}

		if _, ok := w.targets[entry.Name()]; ok {
			w.handleMatch(path, dir)

			continue
		}

		if err := w.walk(ctx, path); err != nil {
			return err
		}
	}

	return nil
}

// handleMatch measures a matched directory and acts on it per mode.
// The match is never descended into.
func (w *walker) handleMatch(path, parent string) {
	size := w.opt.Probe(path)

	if size < w.opt.MinSize {
		w.log.printf("[debug]: skipping match below min-size: %s (%d bytes)\n", path, size)

		return
	}

	w.result.Matches = append(w.result.Matches, Match{
		Path:   filepath.ToSlash(path),
		Parent: filepath.ToSlash(parent),
		Size:   size,
	})
	w.result.MatchCount++
	w.result.TotalBytes += size

	callSafe(w.opt.Callbacks.OnMatch, MatchInfo{Path: path, Size: size})

	if !w.opt.active() {
		return
	}

	if w.opt.ConfirmEach && w.opt.ConfirmFunc != nil && !w.opt.ConfirmFunc(path, size) {
		// Back the declined match out of the totals, leaving them as if
		// it had never been found.
		w.result.TotalBytes -= size
		w.result.MatchCount--
		w.result.Declined++

		callSafe(w.opt.Callbacks.OnSkipped, MatchInfo{Path: path, Size: size})

		return
	}

	if err := w.opt.Remover.RemoveAll(path); err != nil {
		w.result.Errors = append(w.result.Errors, DeleteError{
			Path:    filepath.ToSlash(path),
			Message: err.Error(),
		})

		callSafe(w.opt.Callbacks.OnDeleteError, DeleteErrorInfo{Path: path, Err: err})

		return
	}

	w.result.Deleted++

	callSafe(w.opt.Callbacks.OnDeleted, MatchInfo{Path: path, Size: size})
}
