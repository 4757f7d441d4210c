package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	a := Key([]byte("function f() {}"))
	b := Key([]byte("function f() {}"))
	c := Key([]byte("function g() {}"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}

func TestStoreGetPut(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "results.msgpack"), 10)
	require.NoError(t, err)

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Put("k1", Entry{Output: "out", Functions: 2, Annotated: 1})
	e, ok := s.Get("k1")
	require.True(t, ok)
	assert.Equal(t, "out", e.Output)
	assert.Equal(t, 2, e.Functions)
	assert.Equal(t, 1, e.Annotated)
	assert.Equal(t, 1, s.Len())
}

func TestStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache", "results.msgpack")

	s, err := Open(path, 10)
	require.NoError(t, err)
	s.Put("k1", Entry{Output: "one"})
	s.Put("k2", Entry{Output: "two", Annotated: 3})
	require.NoError(t, s.Save())

	reloaded, err := Open(path, 10)
	require.NoError(t, err)
	assert.Equal(t, 2, reloaded.Len())

	e, ok := reloaded.Get("k2")
	require.True(t, ok)
	assert.Equal(t, "two", e.Output)
	assert.Equal(t, 3, e.Annotated)
}

func TestStorePrune(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.msgpack")

	s, err := Open(path, 2)
	require.NoError(t, err)
	s.Put("old", Entry{Output: "a"})
	// Backdate the first entry so eviction order is deterministic.
	s.mu.Lock()
	e := s.entries["old"]
	e.Touched = 1
	s.entries["old"] = e
	s.mu.Unlock()
	s.Put("mid", Entry{Output: "b"})
	s.Put("new", Entry{Output: "c"})

	require.NoError(t, s.Save())
	assert.Equal(t, 2, s.Len())

	_, ok := s.Get("old")
	assert.False(t, ok, "least recently touched entry should be evicted")
}

func TestStoreCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.msgpack")
	require.NoError(t, os.WriteFile(path, []byte("not msgpack"), 0644))

	s, err := Open(path, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}
