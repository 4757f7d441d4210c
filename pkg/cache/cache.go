// Package cache stores processing results keyed by a hash of the input
// content, so unchanged config files are not re-processed on repeated runs.
// The store persists to disk as msgpack.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const formatVersion = 1

// Entry is one cached processing result.
type Entry struct {
	Output    string `msgpack:"output"`
	Functions int    `msgpack:"functions"`
	Annotated int    `msgpack:"annotated"`
	Touched   int64  `msgpack:"touched"` // unix seconds of last access
}

// fileData is the on-disk msgpack structure.
type fileData struct {
	Version int              `msgpack:"version"`
	Entries map[string]Entry `msgpack:"entries"`
}

// Store is a size-bounded result cache. Entries beyond the limit are evicted
// least-recently-touched first at save time. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[string]Entry
	max     int
	path    string
}

// Key returns the cache key for a document's raw content.
func Key(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Open loads the store at path, starting empty when the file does not exist
// or carries an unknown format version. max bounds the number of entries
// persisted; max <= 0 means unbounded.
func Open(path string, max int) (*Store, error) {
	s := &Store{
		entries: make(map[string]Entry),
		max:     max,
		path:    path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cache file %s: %w", path, err)
	}

	var fd fileData
	if err := msgpack.Unmarshal(data, &fd); err != nil {
		// A corrupt cache is not worth failing a run over; start fresh.
		return s, nil
	}
	if fd.Version == formatVersion && fd.Entries != nil {
		s.entries = fd.Entries
	}
	return s, nil
}

// Get retrieves the entry for key and refreshes its access time.
func (s *Store) Get(key string) (Entry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return Entry{}, false
	}
	e.Touched = time.Now().Unix()
	s.entries[key] = e
	return e, true
}

// Put stores an entry under key.
func (s *Store) Put(key string, e Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.Touched = time.Now().Unix()
	s.entries[key] = e
}

// Len returns the number of entries currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Save prunes the store to its size bound and writes it to disk, creating
// parent directories as needed.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune()

	data, err := msgpack.Marshal(fileData{Version: formatVersion, Entries: s.entries})
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing cache file %s: %w", s.path, err)
	}
	return nil
}

// prune drops the least recently touched entries until the store fits its
// bound. Caller holds the lock.
func (s *Store) prune() {
	if s.max <= 0 || len(s.entries) <= s.max {
		return
	}

	type keyed struct {
		key     string
		touched int64
	}
	all := make([]keyed, 0, len(s.entries))
	for k, e := range s.entries {
		all = append(all, keyed{k, e.Touched})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].touched < all[j].touched })

	for _, v := range all[:len(all)-s.max] {
		delete(s.entries, v.key)
	}
}
