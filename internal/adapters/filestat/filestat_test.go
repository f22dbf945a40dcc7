package filestat_test

import (
	"os"
	"path/filepath"
	"testing"

	"wfgraph/internal/adapters/filestat"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStat_MissingPath(t *testing.T) {
	stat := filestat.New()
	mtime, exists, err := stat.Stat(filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Zero(t, mtime)
}

func TestFileStat_ExistingPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "present")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	stat := filestat.New()
	mtime, exists, err := stat.Stat(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NotZero(t, mtime)
}
