// Package scanner discovers BIRD config files under a directory tree and
// reads them as text. It respects .birdatignore files with gitignore-style
// patterns and falls back to Latin-1 when a file is not valid UTF-8.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileInfo describes one discovered config file.
type FileInfo struct {
	Path     string // relative path from root, forward slashes
	FullPath string // absolute path
	Size     int64
}

// Options configures discovery.
type Options struct {
	Extensions     []string // file extensions to collect, e.g. [".conf"]
	SkipHidden     bool     // skip dot-files and dot-directories
	IgnoreFileName string   // name of the per-tree ignore file
}

// DefaultOptions returns discovery options matching BIRD conventions.
func DefaultOptions() Options {
	return Options{
		Extensions:     []string{".conf"},
		SkipHidden:     true,
		IgnoreFileName: ".birdatignore",
	}
}

// Scanner walks directory trees collecting config files.
type Scanner struct {
	opts Options
}

// New creates a Scanner with the given options.
func New(opts Options) *Scanner {
	return &Scanner{opts: opts}
}

// Scan recursively collects matching files under root, in walk order.
func (s *Scanner) Scan(root string) ([]FileInfo, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("getting absolute path: %w", err)
	}

	patterns, err := loadIgnoreFile(filepath.Join(absRoot, s.opts.IgnoreFileName))
	if err != nil {
		return nil, fmt.Errorf("loading ignore patterns: %w", err)
	}

	var files []FileInfo
	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		rel, err := filepath.Rel(absRoot, path)
		if err != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if s.opts.SkipHidden && strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			if matchesAny(patterns, rel, true) {
				return filepath.SkipDir
			}
			return nil
		}
		if !s.hasWantedExt(path) {
			return nil
		}
		if matchesAny(patterns, rel, false) {
			return nil
		}

		files = append(files, FileInfo{Path: rel, FullPath: path, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory: %w", err)
	}

	return files, nil
}

func (s *Scanner) hasWantedExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range s.opts.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}
