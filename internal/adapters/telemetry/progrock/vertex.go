package progrock

import (
	"fmt"
	"io"

	"wfgraph/internal/core/domain"

	"github.com/vito/progrock"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer to capture the target's standard output.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer to capture the target's standard error.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Log records a status transition for this vertex.
func (v *Vertex) Log(status domain.TargetStatus, msg string) {
	_, _ = fmt.Fprintf(v.vertex.Stdout(), "[%s] %s\n", status, msg)
}

// Complete marks the vertex as finished, successfully or with err.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
