package ports

import (
	"context"
	"io"

	"wfgraph/internal/core/domain"
)

// Vertex represents one target's recorded lifecycle within a scheduling
// pass: its own stdout/stderr streams, structured log lines, and a terminal
// Complete call.
type Vertex interface {
	Stdout() io.Writer
	Stderr() io.Writer
	Log(status domain.TargetStatus, msg string)
	Complete(err error)
}

// Telemetry records scheduling events for observability. It has no bearing
// on the core's decisions; it exists purely so operators can watch a pass
// happen.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts recording a new vertex for the named target.
	Record(ctx context.Context, targetName string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}
