package catalog

import (
	"os"
	"sync"
	"time"

	"github.com/zeebo/xxh3"
)

// cacheEntry holds a cached descriptor with the identity of the file it was
// built from.
type cacheEntry struct {
	descriptor *FileDescriptor
	fileSize   int64
	modTime    time.Time
}

// CacheStats tracks cache performance metrics.
type CacheStats struct {
	TotalRequests int64
	CacheHits     int64
	CacheMisses   int64
}

// Cache keeps file descriptors between listings and invalidates them when the
// underlying file's size or modification time changes.
type Cache struct {
	entries map[uint64]*cacheEntry
	stats   CacheStats
	mutex   sync.RWMutex
}

// NewCache returns an empty descriptor cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[uint64]*cacheEntry)}
}

func cacheKey(path string) uint64 {
	return xxh3.HashString(path)
}

// Get returns the cached descriptor for path if the file is unchanged since
// it was cached.
func (c *Cache) Get(path string, info os.FileInfo) (*FileDescriptor, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.stats.TotalRequests++

	entry, ok := c.entries[cacheKey(path)]
	if !ok || entry.fileSize != info.Size() || !entry.modTime.Equal(info.ModTime()) {
		c.stats.CacheMisses++
		return nil, false
	}

	c.stats.CacheHits++
	return entry.descriptor, true
}

// Set stores a descriptor for path under the file's current identity.
func (c *Cache) Set(path string, info os.FileInfo, fd *FileDescriptor) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[cacheKey(path)] = &cacheEntry{
		descriptor: fd,
		fileSize:   info.Size(),
		modTime:    info.ModTime(),
	}
}

// Clear drops all cached descriptors.
func (c *Cache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.entries = make(map[uint64]*cacheEntry)
}

// Stats returns a copy of the current cache counters.
func (c *Cache) Stats() CacheStats {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.stats
}
