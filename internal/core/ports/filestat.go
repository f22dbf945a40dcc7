package ports

// FileStat is a read-only, stat-equivalent probe of a single absolute path:
// only modification timestamp and presence are consumed (spec.md §6 "File
// system").
//
//go:generate go run go.uber.org/mock/mockgen -source=filestat.go -destination=mocks/mock_filestat.go -package=mocks
type FileStat interface {
	// Stat returns path's modification timestamp (monotonic numeric,
	// platform-defined units) and whether it exists. A missing path is
	// reported as exists=false, err=nil; err is reserved for genuine I/O
	// failures other than not-exist.
	Stat(path string) (mtime int64, exists bool, err error)
}
