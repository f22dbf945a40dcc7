package filestat

import (
	"context"

	"wfgraph/internal/core/ports"

	"github.com/grindlemire/graft"
)

// NodeID identifies this adapter's registration in the wiring graph.
const NodeID graft.ID = "adapter.filestat"

func init() {
	graft.Register(graft.Node[ports.FileStat]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.FileStat, error) {
			return New(), nil
		},
	})
}
