package core

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"todoscan/logger"

	ignore "github.com/sabhiram/go-gitignore"
)

// WalkOptions controls file selection during a tree walk.
type WalkOptions struct {
	// Extensions selects which files are scanned (e.g. ".go", ".rs").
	Extensions []string
	// SkipDirs are directory names skipped entirely wherever they appear,
	// e.g. build-output directories like "target".
	SkipDirs []string
	// IgnoreFile is the name of an optional gitignore-syntax file looked up
	// at the scan root; matching paths are excluded from the walk.
	IgnoreFile string
	// Out receives "reading" diagnostics, Diag receives "skipping"
	// diagnostics. They default to stdout and stderr.
	Out  io.Writer
	Diag io.Writer
}

// WalkStats summarizes what a walk visited.
type WalkStats struct {
	FilesScanned int
	DirsSkipped  int
}

// WalkTree walks root, scans every selected file for comments, and feeds
// them to the tracker. It aborts on the first unreadable file or directory;
// a half-scanned tree would report misleading counts.
func WalkTree(root string, opts WalkOptions, tracker *CommentTracker) (WalkStats, error) {
	var stats WalkStats

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	diag := opts.Diag
	if diag == nil {
		diag = os.Stderr
	}

	info, err := os.Stat(root)
	if err != nil {
		return stats, fmt.Errorf("stat root path %q: %w", root, err)
	}
	if !info.IsDir() {
		return stats, fmt.Errorf("root path %q is not a directory", root)
	}

	matcher := loadIgnoreMatcher(root, opts.IgnoreFile)

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %q: %w", path, err)
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil || rel == "." {
			return nil
		}

		if d.IsDir() {
			if containsString(opts.SkipDirs, d.Name()) {
				fmt.Fprintf(diag, "skipping %q (looks like %q directory)\n", path, d.Name())
				logger.Info("WalkTree: skipping directory %q (reserved name %q)", path, d.Name())
				stats.DirsSkipped++
				return fs.SkipDir
			}
			if matcher != nil && (matcher.MatchesPath(rel) || matcher.MatchesPath(rel+"/")) {
				fmt.Fprintf(diag, "skipping %q (ignore pattern)\n", path)
				logger.Info("WalkTree: skipping directory %q (ignore pattern)", path)
				stats.DirsSkipped++
				return fs.SkipDir
			}
			return nil
		}

		if !hasSelectedExtension(path, opts.Extensions) {
			return nil
		}
		if matcher != nil && matcher.MatchesPath(rel) {
			logger.Debug("WalkTree: ignoring file %q (ignore pattern)", path)
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return fmt.Errorf("metadata for %q: %w", path, err)
		}
		if !fi.Mode().IsRegular() {
			return nil
		}

		fmt.Fprintf(out, "reading %q\n", path)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %q: %w", path, err)
		}

		scanner := NewCommentScanner(path, string(data))
		for {
			c, ok := scanner.Next()
			if !ok {
				break
			}
			tracker.Track(c)
		}
		stats.FilesScanned++
		return nil
	})
	if err != nil {
		return stats, err
	}

	logger.Info("WalkTree: scanned %d files under %q (%d directories skipped)", stats.FilesScanned, root, stats.DirsSkipped)
	return stats, nil
}

// loadIgnoreMatcher compiles the optional ignore file at the scan root.
// A missing or unreadable ignore file just means no extra ignore rules.
func loadIgnoreMatcher(root, ignoreFile string) *ignore.GitIgnore {
	if ignoreFile == "" {
		return nil
	}
	ignorePath := filepath.Join(root, ignoreFile)
	content, err := os.ReadFile(ignorePath)
	if err != nil {
		return nil
	}
	logger.Info("WalkTree: using ignore file %q", ignorePath)
	return ignore.CompileIgnoreLines(strings.Split(string(content), "\n")...)
}

func hasSelectedExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
