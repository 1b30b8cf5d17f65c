package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := OpenFile(path)
	require.NoError(t, err)

	require.NoError(t, s.Set(KeyTasks, []string{"a", "b"}))

	var got []string
	ok, err := s.Get(KeyTasks, &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	// A second store over the same file sees the persisted value.
	s2, err := OpenFile(path)
	require.NoError(t, err)
	got = nil
	ok, err = s2.Get(KeyTasks, &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestFileStoreMissingKey(t *testing.T) {
	s, err := OpenFile(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	var got string
	ok, err := s.Get("nope", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreDelete(t *testing.T) {
	s, err := OpenFile(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	require.NoError(t, s.Set(KeyUserRole, "manager"))
	require.NoError(t, s.Delete(KeyUserRole))

	var got string
	ok, err := s.Get(KeyUserRole, &got)
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent key is a no-op.
	require.NoError(t, s.Delete(KeyUserRole))
}

func TestFileStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := OpenFile(path)
	require.NoError(t, err)

	var got string
	ok, err := s.Get(KeyUserRole, &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreMalformedValueIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tasks": "not-an-array"}`), 0o644))

	s, err := OpenFile(path)
	require.NoError(t, err)

	var got []string
	ok, err := s.Get(KeyTasks, &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStoreReloadReportsChangedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("keep", 1))
	require.NoError(t, s.Set("change", 1))
	require.NoError(t, s.Set("drop", 1))

	// Another process rewrites the file.
	require.NoError(t, os.WriteFile(path, []byte(`{"keep":1,"change":2,"added":3}`), 0o644))

	changed, err := s.Reload()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"change", "added", "drop"}, changed)

	var v int
	ok, err := s.Get("change", &v)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	ok, _ = s.Get("drop", &v)
	assert.False(t, ok)
}

func TestFileStoreWrittenByUs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	s, err := OpenFile(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "v"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, s.WrittenByUs(raw))
	assert.False(t, s.WrittenByUs([]byte(`{"k":"other"}`)))
}
