package domain_test

import (
	"testing"

	"wfgraph/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileInfoCache_StatsEachPathAtMostOnce(t *testing.T) {
	calls := 0
	cache := domain.NewFileInfoCache(func(path string) (int64, bool, error) {
		calls++
		return 42, true, nil
	})

	for i := 0; i < 3; i++ {
		mtime, exists, err := cache.Get("/repo/a")
		require.NoError(t, err)
		assert.Equal(t, int64(42), mtime)
		assert.True(t, exists)
	}
	assert.Equal(t, 1, calls, "stat must be invoked at most once per path for the cache's lifetime")
}

func TestFileInfoCache_MissingPathIsCachedToo(t *testing.T) {
	calls := 0
	cache := domain.NewFileInfoCache(func(path string) (int64, bool, error) {
		calls++
		return 0, false, nil
	})

	_, exists, err := cache.Get("/repo/missing")
	require.NoError(t, err)
	assert.False(t, exists)

	_, exists, err = cache.Get("/repo/missing")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, 1, calls)
}

func TestFileInfoCache_DistinctPathsAreStatedIndependently(t *testing.T) {
	cache := domain.NewFileInfoCache(func(path string) (int64, bool, error) {
		if path == "/repo/a" {
			return 1, true, nil
		}
		return 2, true, nil
	})

	a, _, err := cache.Get("/repo/a")
	require.NoError(t, err)
	b, _, err := cache.Get("/repo/b")
	require.NoError(t, err)

	assert.Equal(t, int64(1), a)
	assert.Equal(t, int64(2), b)
}
