package progrock

import (
	"context"

	"wfgraph/internal/core/ports"

	"github.com/grindlemire/graft"
)

// NodeID identifies this adapter's registration in the wiring graph.
const NodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Telemetry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Telemetry, error) {
			return New(), nil
		},
	})
}
