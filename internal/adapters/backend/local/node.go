package local

import (
	"context"

	"wfgraph/internal/adapters/logger"
	"wfgraph/internal/core/ports"

	"github.com/grindlemire/graft"
)

// NodeID identifies this adapter's registration in the wiring graph.
const NodeID graft.ID = "adapter.backend_local"

func init() {
	graft.Register(graft.Node[ports.Backend]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Backend, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewBackend(log), nil
		},
	})
}
