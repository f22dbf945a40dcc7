package logger

import (
	"context"

	"wfgraph/internal/core/ports"

	"github.com/grindlemire/graft"
)

// NodeID identifies this adapter's registration in the wiring graph.
const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Logger, error) {
			return New(), nil
		},
	})
}
