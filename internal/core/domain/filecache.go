package domain

import "sync"

// StatFunc probes a single absolute path, returning its modification
// timestamp (a monotonic numeric value in platform-defined units, compared
// only pairwise), whether the path exists, and any non-existence error.
type StatFunc func(path string) (mtime int64, exists bool, err error)

// FileInfoCache is a lazy, memoising mapping from absolute path to either a
// modification timestamp or "missing". The first access probes the file
// system via stat; subsequent accesses reuse the cached result for the
// lifetime of the cache, so that a single scheduling pass sees a consistent
// view of the file system even if it changes mid-run (spec.md §4.2).
type FileInfoCache struct {
	stat StatFunc

	mu    sync.Mutex
	cache map[InternedString]cachedStat
}

type cachedStat struct {
	mtime  int64
	exists bool
}

// NewFileInfoCache creates a FileInfoCache backed by stat.
func NewFileInfoCache(stat StatFunc) *FileInfoCache {
	return &FileInfoCache{
		stat:  stat,
		cache: make(map[InternedString]cachedStat),
	}
}

// Get returns the modification timestamp for path and whether it exists.
// The underlying stat is invoked at most once per path for the cache's
// lifetime. path is interned before use as a map key: the same input or
// output path is typically named by several targets (a dependency's output
// is its dependent's input), so interning collapses those repeats to one
// backing string per distinct path.
func (c *FileInfoCache) Get(path string) (mtime int64, exists bool, err error) {
	key := NewInternedString(path)

	c.mu.Lock()
	if cached, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return cached.mtime, cached.exists, nil
	}
	c.mu.Unlock()

	mtime, exists, err = c.stat(path)
	if err != nil {
		return 0, false, err
	}

	c.mu.Lock()
	c.cache[key] = cachedStat{mtime: mtime, exists: exists}
	c.mu.Unlock()

	return mtime, exists, nil
}
