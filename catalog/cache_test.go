package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statFile(t *testing.T, path string) os.FileInfo {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return info
}

func TestCache_GetMissThenHit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(path, []byte("x\n1\n"), 0644))
	info := statFile(t, path)

	cache := NewCache()

	_, ok := cache.Get(path, info)
	assert.False(t, ok)

	fd := &FileDescriptor{Filename: "a.csv", Path: path}
	cache.Set(path, info, fd)

	got, ok := cache.Get(path, info)
	require.True(t, ok)
	assert.Equal(t, fd, got)

	stats := cache.Stats()
	assert.Equal(t, int64(2), stats.TotalRequests)
	assert.Equal(t, int64(1), stats.CacheHits)
	assert.Equal(t, int64(1), stats.CacheMisses)
}

func TestCache_InvalidatesOnModification(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(path, []byte("x\n1\n"), 0644))
	info := statFile(t, path)

	cache := NewCache()
	cache.Set(path, info, &FileDescriptor{Filename: "a.csv"})

	// Same size, newer modtime.
	future := info.ModTime().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	_, ok := cache.Get(path, statFile(t, path))
	assert.False(t, ok)
}

func TestCache_InvalidatesOnSizeChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(path, []byte("x\n1\n"), 0644))
	info := statFile(t, path)

	cache := NewCache()
	cache.Set(path, info, &FileDescriptor{Filename: "a.csv"})

	require.NoError(t, os.WriteFile(path, []byte("x\n1\n2\n3\n"), 0644))
	require.NoError(t, os.Chtimes(path, info.ModTime(), info.ModTime()))

	_, ok := cache.Get(path, statFile(t, path))
	assert.False(t, ok)
}

func TestCache_Clear(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(path, []byte("x\n"), 0644))
	info := statFile(t, path)

	cache := NewCache()
	cache.Set(path, info, &FileDescriptor{Filename: "a.csv"})
	cache.Clear()

	_, ok := cache.Get(path, info)
	assert.False(t, ok)
}
