// Package filestat implements ports.FileStat over the local file system.
package filestat

import (
	"errors"
	"io/fs"
	"os"
)

// FileStat implements ports.FileStat using os.Stat.
type FileStat struct{}

// New creates a FileStat.
func New() *FileStat { return &FileStat{} }

// Stat reports path's modification time as UnixNano and whether it exists.
// A non-existence error is reported as (0, false, nil); any other error is
// returned as-is.
func (FileStat) Stat(path string) (int64, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return info.ModTime().UnixNano(), true, nil
}
