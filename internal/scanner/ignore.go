package scanner

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// ignorePattern is one gitignore-style line: an optional leading "!" negates,
// a trailing "/" restricts the pattern to directories, and "*"/"?" glob within
// a single path segment.
type ignorePattern struct {
	glob    string
	negate  bool
	dirOnly bool
}

// loadIgnoreFile parses the ignore file at path. A missing file yields no
// patterns and no error.
func loadIgnoreFile(path string) ([]ignorePattern, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var patterns []ignorePattern
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		p := ignorePattern{glob: line}
		if strings.HasPrefix(p.glob, "!") {
			p.negate = true
			p.glob = p.glob[1:]
		}
		if strings.HasSuffix(p.glob, "/") {
			p.dirOnly = true
			p.glob = strings.TrimSuffix(p.glob, "/")
		}
		patterns = append(patterns, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return patterns, nil
}

// matchesAny reports whether rel is ignored under the pattern list. Later
// patterns win, so a negation can re-include an earlier match.
func matchesAny(patterns []ignorePattern, rel string, isDir bool) bool {
	ignored := false
	for _, p := range patterns {
		if p.dirOnly && !isDir {
			// A directory pattern still covers files beneath that directory.
			if !coversParent(p.glob, rel) {
				continue
			}
		} else if !matchSegments(p.glob, rel) {
			continue
		}
		ignored = !p.negate
	}
	return ignored
}

// matchSegments matches the glob against the full relative path and against
// its basename, so "*.bak" ignores at any depth.
func matchSegments(glob, rel string) bool {
	if ok, _ := filepath.Match(glob, rel); ok {
		return true
	}
	ok, _ := filepath.Match(glob, filepath.Base(rel))
	return ok
}

// coversParent reports whether any leading directory of rel matches glob.
func coversParent(glob, rel string) bool {
	segs := strings.Split(rel, "/")
	for i := 1; i <= len(segs); i++ {
		prefix := strings.Join(segs[:i], "/")
		if matchSegments(glob, prefix) {
			return true
		}
	}
	return false
}
