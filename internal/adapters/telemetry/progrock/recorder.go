// Package progrock implements the telemetry adapter using vito/progrock.
package progrock

import (
	"context"

	"wfgraph/internal/core/ports"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
)

// Recorder implements ports.Telemetry on top of a progrock.Tape.
type Recorder struct {
	tape *progrock.Tape
	rec  *progrock.Recorder
}

// New creates a Recorder backed by a fresh in-memory tape.
func New() ports.Telemetry {
	tape := progrock.NewTape()
	return &Recorder{
		tape: tape,
		rec:  progrock.NewRecorder(tape),
	}
}

// Record starts recording a new vertex named after the target.
func (r *Recorder) Record(ctx context.Context, targetName string) (context.Context, ports.Vertex) {
	d := digest.FromString(targetName)
	v := r.rec.Vertex(d, targetName)
	return ctx, &Vertex{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.tape.Close()
}
